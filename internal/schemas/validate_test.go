package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidKnowledgeProfile(t *testing.T) {
	doc := []byte(`{
		"headline": "CTO at Acme",
		"summary": null,
		"experiences": [{"title": "CTO", "company": "Acme", "is_current": true}],
		"education": ["PhD - Cambridge - 1840"],
		"skills": ["Mathematics"],
		"confidence": "high"
	}`)

	assert.NoError(t, Validate(KnowledgeProfile, doc))
}

func TestValidate_WrongFieldType(t *testing.T) {
	doc := []byte(`{"headline": 42}`)

	err := Validate(KnowledgeProfile, doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_InvalidConfidence(t *testing.T) {
	doc := []byte(`{"confidence": "certain"}`)
	assert.Error(t, Validate(KnowledgeProfile, doc))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nonexistent", []byte(`{}`))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidate_AllSchemasLoadable(t *testing.T) {
	for _, name := range []string{StructuredFields, KnowledgeProfile, PostsSummary, Synthesis, Justification} {
		assert.NoError(t, Validate(name, []byte(`{}`)), name)
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	assert.Error(t, Validate(Synthesis, []byte(`not json`)))
}
