package serve

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_InitUnmarshal(t *testing.T) {
	input := `{"type":"init","payload":{"aff_path":"a.aff","dic_path":"a.dic","custom_words":["fyne","Tauri"]}}`

	var req Request
	require.NoError(t, json.Unmarshal([]byte(input), &req))
	assert.Equal(t, "init", req.Type)

	var payload InitPayload
	require.NoError(t, json.Unmarshal(req.Payload, &payload))

	assert.Equal(t, "a.aff", payload.AffPath)
	assert.Equal(t, "a.dic", payload.DicPath)
	assert.Equal(t, []string{"fyne", "Tauri"}, payload.CustomWords)
}

func TestResponse_Marshal(t *testing.T) {
	data, err := json.Marshal(Response{Success: true, Type: "ready"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"success":true`)
	assert.Contains(t, string(data), `"type":"ready"`)
	assert.NotContains(t, string(data), `"error"`)
	assert.NotContains(t, string(data), `"data"`)
}
