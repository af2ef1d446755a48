package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/Almacen-api/docs"
)

// El init del paquete registra el spec; ReadDoc debe devolver JSON válido con
// los paths de la API.
func TestSwaggerSpecRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err, "el spec debe estar registrado en swag")

	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec), "el spec debe ser JSON válido")

	info, _ := spec["info"].(map[string]interface{})
	require.NotNil(t, info)
	assert.Equal(t, "Almacen API", info["title"])

	paths, _ := spec["paths"].(map[string]interface{})
	require.NotNil(t, paths)
	assert.Contains(t, paths, "/api/products")
	assert.Contains(t, paths, "/api/invoices/{id}/pay")
	assert.Contains(t, paths, "/api/dashboard/overview")
}
