package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	photoMaxSide  = 512
	photoQuality  = 80
	photoMaxBytes = 2 * 1024 * 1024
)

// NormalizeProfilePhoto decodifica jpg/png, recorta a photoMaxSide máx.
// (manteniendo aspecto) y re-encodea a webp. Devuelve los bytes listos
// para subir al object storage.
func NormalizeProfilePhoto(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > photoMaxBytes {
		return nil, fmt.Errorf("la foto supera los %dKB", photoMaxBytes/1024)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la foto: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la foto: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("formato de imagen no soportado: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > photoMaxSide || b.Dy() > photoMaxSide {
		img = imaging.Fit(img, photoMaxSide, photoMaxSide, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, img, &webp.Options{Quality: photoQuality}); err != nil {
		return nil, fmt.Errorf("no se pudo convertir a webp: %w", err)
	}
	return out.Bytes(), nil
}
