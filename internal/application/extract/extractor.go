// Package extract convierte un documento de orden de trabajo en líneas
// candidatas (material, cantidad). Es un colaborador de mejor esfuerzo fuera
// de la frontera de confianza del motor: su salida se valida igual que
// cualquier otra entrada.
package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
)

// Formato esperado por línea: "Nombre del material - 15" (entero o decimal).
var lineRe = regexp.MustCompile(`(.+?)\s*-\s*(\d+(?:\.\d+)?)`)

var pdfMagic = []byte("%PDF")

// Line un candidato extraído del documento.
type Line struct {
	MaterialName string
	Quantity     decimal.Decimal
}

// Extract lee el texto del documento (PDF o texto plano) y devuelve las líneas
// que respetan el formato "Material - Cantidad". Una secuencia vacía no es un
// error de extracción: significa "nada que conciliar" y lo decide el caller.
func Extract(doc []byte) ([]Line, error) {
	text := string(doc)
	if bytes.HasPrefix(doc, pdfMagic) {
		extracted, err := pdfText(doc)
		if err != nil {
			return nil, fmt.Errorf("leer texto del PDF: %w", err)
		}
		text = extracted
	}

	lines := make([]Line, 0)
	for _, raw := range strings.Split(text, "\n") {
		m := lineRe.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		qty, err := decimal.NewFromString(m[2])
		if err != nil || !qty.IsPositive() {
			continue
		}
		lines = append(lines, Line{
			MaterialName: strings.TrimSpace(m[1]),
			Quantity:     qty,
		})
	}
	return lines, nil
}

func pdfText(doc []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
