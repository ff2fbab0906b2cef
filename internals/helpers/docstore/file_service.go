package docstore

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind agrupa las reglas de validación por tipo de documento.
// El orquestador nunca inspecciona bytes: solo tamaño y extensión.
type Kind string

const (
	KindPlan       Kind = "practicas/planes"        // plan de práctica (PDF)
	KindCV         Kind = "estudiantes/hojas_vida"  // hoja de vida (PDF)
	KindCompanyDoc Kind = "empresas/documentos"     // cámara de comercio, RUT (PDF)
	KindEvidence   Kind = "practicas/seguimientos"  // evidencias semanales
	KindMinutes    Kind = "sustentaciones/actas"    // acta de sustentación (PDF)
	KindPhoto      Kind = "perfiles/fotos"          // fotos de perfil (webp ya normalizado)
)

var allowedExt = map[Kind][]string{
	KindPlan:       {".pdf"},
	KindCV:         {".pdf"},
	KindCompanyDoc: {".pdf"},
	KindEvidence:   {".pdf", ".jpg", ".jpeg", ".png", ".docx", ".zip"},
	KindMinutes:    {".pdf"},
	KindPhoto:      {".webp"},
}

var maxSize = map[Kind]int64{
	KindPlan:       5 * 1024 * 1024,
	KindCV:         5 * 1024 * 1024,
	KindCompanyDoc: 5 * 1024 * 1024,
	KindEvidence:   10 * 1024 * 1024,
	KindMinutes:    5 * 1024 * 1024,
	KindPhoto:      1 * 1024 * 1024,
}

func validate(kind Kind, filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	ok := false
	for _, e := range allowedExt[kind] {
		if e == ext {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("extensión %q no permitida para %s", ext, kind)
	}
	if limit := maxSize[kind]; limit > 0 && size > limit {
		return fmt.Errorf("el archivo supera el límite de %dMB", limit/(1024*1024))
	}
	return nil
}

func objectKey(kind Kind, filename string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, filepath.Base(filename))
	return fmt.Sprintf("%s/%s-%s-%s", kind, time.Now().Format("20060102"), uuid.New().String(), safe)
}

// UploadFile sube un multipart al bucket y devuelve la URL pública (referencia
// opaca para el resto del sistema).
func UploadFile(kind Kind, fh *multipart.FileHeader) (string, error) {
	if err := validate(kind, fh.Filename, fh.Size); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("no se pudo abrir el archivo: %w", err)
	}
	defer src.Close()

	b, err := getBucket()
	if err != nil {
		return "", err
	}

	key := objectKey(kind, fh.Filename)
	if err := b.PutObject(key, src); err != nil {
		return "", fmt.Errorf("upload falló: %w", err)
	}
	return publicURL(key), nil
}

// UploadBytes sube contenido ya procesado (p. ej. fotos convertidas a webp).
func UploadBytes(kind Kind, filename string, data []byte) (string, error) {
	if err := validate(kind, filename, int64(len(data))); err != nil {
		return "", err
	}

	b, err := getBucket()
	if err != nil {
		return "", err
	}

	key := objectKey(kind, filename)
	if err := b.PutObject(key, io.Reader(bytes.NewReader(data))); err != nil {
		return "", fmt.Errorf("upload falló: %w", err)
	}
	return publicURL(key), nil
}
