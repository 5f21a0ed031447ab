package report

import (
	"testing"

	"fjacquet/phonebill/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderResult(t *testing.T) {
	r := models.NewResult("555-1000")
	r.AddMinutes("555-2000", "2023-01-01", 5)
	r.AddMinutes("555-3000", "2023-01-02", 12)
	r.AddMinutes("555-2000", "2023-01-03", 10)
	r.AddSMS("555-444-1234")
	r.AddSMS("555-444-1234")
	r.AddSMS("555-444-9999")

	expected := "####### Analysis for 555-1000 ########\n" +
		"####### From period 2023-01-01 to 2023-01-03 ########\n" +
		"####### ####### ####### ####### ########\n" +
		" \n SMS Info \n" +
		" \tPhone Number\t\tCount\n" +
		"\t555-444-1234\t\t2\n" +
		"\t555-444-9999\t\t1\n" +
		" \n Phone Info \n" +
		" \tPhone Number\t\tMinutes\n" +
		"\t555-2000\t\t15\n" +
		"\t555-3000\t\t12\n" +
		"\n####### ####### ####### ####### ########\n"

	assert.Equal(t, expected, RenderResult(r))
}

func TestRenderResult_NoCalls(t *testing.T) {
	out := RenderResult(models.NewResult("555-1000"))

	assert.Contains(t, out, "####### From period Unknown to Unknown ########\n")
	assert.Contains(t, out, " \tPhone Number\t\tCount\n \n Phone Info \n")
}

func TestRenderExtract(t *testing.T) {
	tallies := []models.Tally{{Number: "123.456.7890", Value: 2}, {Number: "111.222.3333", Value: 1}}

	assert.Equal(t, "Number   |  Count \n123.456.7890 2\n111.222.3333 1\n", RenderExtract(models.ModeSMS, tallies))
	assert.Equal(t, "Number | Minutes\n123.456.7890 2\n111.222.3333 1\n", RenderExtract(models.ModePhone, tallies))
	assert.Equal(t, "Number | Minutes\n", RenderExtract(models.ModePhone, nil))
}
