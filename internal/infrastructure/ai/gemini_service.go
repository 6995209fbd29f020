// Package ai contiene el adaptador hacia el oráculo de extracción de
// reportes de servicio (Google Gemini, vía su API REST).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa ReportExtractor.
var _ ports.ReportExtractor = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// extractionPrompt define el rol del modelo y el formato de salida.
	// Usar responseMimeType=application/json obliga a Gemini a devolver JSON
	// puro, eliminando la necesidad de limpiar bloques de markdown.
	extractionPrompt = `Eres un asistente que lee reportes de servicio de instalaciones de sistemas de seguridad (alarmas, CCTV, control de acceso) en México.
Del documento adjunto extrae ÚNICAMENTE un objeto JSON (sin texto adicional) con esta estructura exacta:
{
  "sctask": "<número SCTASK si aparece, o cadena vacía>",
  "reqo": "<número REQ si aparece, o cadena vacía>",
  "folio_comexa": "<folio interno COMEXA si aparece, o cadena vacía>",
  "technician_name": "<nombre del técnico responsable, o cadena vacía>",
  "branch_identifier": "<número SIRH o nombre de la sucursal, o cadena vacía>",
  "report_date": "<fecha de registro en formato DD/MM/YYYY, o cadena vacía>",
  "installation_date": "<fecha de atención en formato DD/MM/YYYY, o cadena vacía>",
  "items": [
    {
      "device_name": "<nombre del material o equipo>",
      "quantity": <cantidad entera>,
      "item_category": "<'Material o refacción' o 'Equipo instalado'>"
    }
  ]
}

Reglas:
- Si un dato no aparece en el documento, deja el campo como cadena vacía (o lista vacía para items).
- No inventes datos: es preferible un campo vacío a un dato adivinado.
- Las cantidades son enteros positivos.`
)

// GeminiService adaptador que implementa ReportExtractor llamando a la API
// REST de Google Gemini con el documento adjunto inline (base64). Usa
// únicamente la librería estándar de Go (net/http) para la red.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
// Si apiKey está vacío, las llamadas devuelven error en lugar de fallar al arranque.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // contenido del documento en base64
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ExtractServiceReport manda el documento (imagen o PDF en base64) a Gemini
// y devuelve los campos detectados. La respuesta es best-effort: los campos
// que el modelo no encuentra llegan vacíos, nunca inventados por este adaptador.
func (s *GeminiService) ExtractServiceReport(ctx context.Context, fileBase64, mimeType string) (*dto.ExtractedReport, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{Text: extractionPrompt},
					{InlineData: &geminiInlineData{MIMEType: mimeType, Data: fileBase64}},
				},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.1, // baja temperatura: extracción, no redacción
			MaxOutputTokens:  2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)

	var report dto.ExtractedReport
	if err := json.Unmarshal([]byte(rawJSON), &report); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}

	// Descartar items sin nombre o con cantidad inválida; el resto del
	// saneo (cruce contra stock real) ocurre en el caso de uso.
	valid := report.Items[:0]
	for _, item := range report.Items {
		if strings.TrimSpace(item.DeviceName) != "" && item.Quantity > 0 {
			valid = append(valid, item)
		}
	}
	report.Items = valid
	return &report, nil
}
