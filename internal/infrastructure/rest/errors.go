package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// extractMessage obtiene el mensaje de usuario desde el cuerpo de error del
// backend. Prioridad: errores por campo del serializer (los más específicos,
// ej. slug duplicado), luego "error", luego "detail", luego el cuerpo si es un
// string JSON. Devuelve vacío si no se pudo determinar nada; el llamador decide
// el mensaje genérico.
func extractMessage(data []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		if msg := fieldMessages(obj); msg != "" {
			return msg
		}
		for _, key := range []string{"error", "detail"} {
			var s string
			if raw, ok := obj[key]; ok && json.Unmarshal(raw, &s) == nil && s != "" {
				return s
			}
		}
		return ""
	}

	var s string
	if json.Unmarshal(data, &s) == nil {
		return s
	}
	return ""
}

// fieldMessages junta los errores por campo del serializer en el formato
// "campo: mensaje | campo: mensaje". Los campos se ordenan para que el mensaje
// sea determinista.
func fieldMessages(obj map[string]json.RawMessage) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if k == "error" || k == "detail" || k == "code" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		var list []string
		if json.Unmarshal(obj[k], &list) == nil {
			if len(list) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(list, ", ")))
			}
			continue
		}
		var s string
		if json.Unmarshal(obj[k], &s) == nil && s != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", k, s))
		}
	}
	return strings.Join(parts, " | ")
}

// asAPIError helper sobre errors.As para el tipo concreto del paquete.
func asAPIError(err error, target **APIError) bool {
	return errors.As(err, target)
}

// withFallback completa el mensaje de un *APIError cuando el cuerpo no trajo
// nada aprovechable. Otros errores (red, decodificación) pasan sin tocar.
func withFallback(err error, generic string) error {
	var apiErr *APIError
	if asAPIError(err, &apiErr) && apiErr.Message == "" {
		apiErr.Message = generic
	}
	return err
}
