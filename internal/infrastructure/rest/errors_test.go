package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorax/invorax-go/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// extractMessage — prioridad de los mensajes de error del backend
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractMessage_ErroresPorCampoTienenPrioridad(t *testing.T) {
	body := []byte(`{"detail": "genérico", "slug": ["categoría con este slug ya existe."]}`)
	assert.Equal(t, "slug: categoría con este slug ya existe.", extractMessage(body))
}

func TestExtractMessage_VariosCampos_OrdenDeterminista(t *testing.T) {
	body := []byte(`{"slug": ["requerido"], "name": ["muy largo"]}`)
	assert.Equal(t, "name: muy largo | slug: requerido", extractMessage(body))
}

func TestExtractMessage_ClaveError(t *testing.T) {
	body := []byte(`{"error": "Stock insuficiente"}`)
	assert.Equal(t, "Stock insuficiente", extractMessage(body))
}

func TestExtractMessage_ClaveDetail(t *testing.T) {
	body := []byte(`{"detail": "Token is invalid or expired", "code": "token_not_valid"}`)
	assert.Equal(t, "Token is invalid or expired", extractMessage(body))
}

func TestExtractMessage_ErrorAntesQueDetail(t *testing.T) {
	body := []byte(`{"error": "específico", "detail": "genérico"}`)
	assert.Equal(t, "específico", extractMessage(body))
}

func TestExtractMessage_CuerpoString(t *testing.T) {
	assert.Equal(t, "algo salió mal", extractMessage([]byte(`"algo salió mal"`)))
}

func TestExtractMessage_CuerpoInservible_DevuelveVacio(t *testing.T) {
	assert.Empty(t, extractMessage([]byte(`<html>502 Bad Gateway</html>`)))
	assert.Empty(t, extractMessage([]byte(`{}`)))
	assert.Empty(t, extractMessage(nil))
}

func TestWithFallback_SoloCompletaMensajesVacios(t *testing.T) {
	err := withFallback(&APIError{Status: 500}, "Error genérico")
	assert.Equal(t, "Error genérico", err.Error())

	err = withFallback(&APIError{Status: 400, Message: "específico"}, "Error genérico")
	assert.Equal(t, "específico", err.Error(), "un mensaje del servidor no debe pisarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// decodeList — arreglo plano y sobre paginado
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeList_ArregloPlano(t *testing.T) {
	out, err := decodeList[entity.Category]([]byte(`[{"id": 1, "name": "Lácteos"}]`), "/categories/")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Lácteos", out[0].Name)
}

func TestDecodeList_SobrePaginado(t *testing.T) {
	body := []byte(`{"count": 2, "next": null, "previous": null, "results": [{"id": 1}, {"id": 2}]}`)
	out, err := decodeList[entity.Category](body, "/categories/")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[1].ID)
}

func TestDecodeList_CuerpoInvalido(t *testing.T) {
	_, err := decodeList[entity.Category]([]byte(`no-json`), "/categories/")
	assert.Error(t, err)
}
