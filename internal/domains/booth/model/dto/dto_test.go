package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boothdesk/internal/domains/booth/model"
	"boothdesk/internal/domains/booth/model/dto"
)

func TestBoothForm_ToPayloadDefaults(t *testing.T) {
	form := dto.BoothForm{Number: 5}

	payload := form.ToPayload()

	assert.Equal(t, model.CategoryOther, payload.Category)
	assert.Equal(t, model.StatusEmpty, payload.Status)
}

func TestBoothPayload_OmitsBlankOptionalFields(t *testing.T) {
	form := dto.BoothForm{Number: 5, Category: model.CategoryGold, CompanyName: "Acme"}

	raw, err := json.Marshal(form.ToPayload())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "Acme", fields["companyName"])
	assert.NotContains(t, fields, "companyWebsite")
	assert.NotContains(t, fields, "contactEmail")
	assert.NotContains(t, fields, "companyLogoUrl")
}

func TestFormFromBooth_PrefillsEveryEditableField(t *testing.T) {
	booth := model.Booth{
		ID:             "a1",
		Number:         3,
		Category:       model.CategoryDiamond,
		Status:         model.StatusOccupied,
		CompanyName:    "Acme",
		ContactEmail:   "sales@acme.example",
		CompanyLogoURL: "https://cdn.example.com/acme.png",
	}

	form := dto.FormFromBooth(booth)

	assert.Equal(t, 3, form.Number)
	assert.Equal(t, model.CategoryDiamond, form.Category)
	assert.Equal(t, model.StatusOccupied, form.Status)
	assert.Equal(t, "Acme", form.CompanyName)
	assert.Equal(t, "sales@acme.example", form.ContactEmail)
	assert.Equal(t, "https://cdn.example.com/acme.png", form.CompanyLogoURL)
}
