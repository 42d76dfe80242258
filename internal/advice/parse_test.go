package advice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/tripwise/internal/advice"
)

func TestParseSections_Basic(t *testing.T) {
	reply := "1. ACCOMMODATION RECOMMENDATIONS\n- stay downtown\n2. CURRENCY\n- use cards"

	s := advice.ParseSections(reply)
	assert.Equal(t, "- stay downtown\n", s.Accommodation)
	assert.Equal(t, "- use cards\n", s.CurrencyPayments)
	assert.Equal(t, reply, s.FullText)
	assert.Empty(t, s.Transportation)
}

func TestParseSections_DropsPreamble(t *testing.T) {
	reply := "Here is your plan!\n\n1. ACCOMMODATION\n- hotel\n"

	s := advice.ParseSections(reply)
	assert.Equal(t, "- hotel\n", s.Accommodation)
}

func TestParseSections_MarkdownHeadersAndAllSections(t *testing.T) {
	reply := `## 1. Accommodation Recommendations
- Le Marais
**2) Currency & Payments**
- Euro
### 3. TRANSPORTATION
- Metro
4. Cultural Guide
- Tip 5-10%
5. FOOD & DINING
- Croissants
6. Activities & Attractions
- Louvre
7. PRACTICAL INFORMATION
- Type E plugs
8. PACKING RECOMMENDATIONS
- Umbrella
9. SAFETY & HEALTH
- Watch for pickpockets
10. ANSWERS TO SPECIFIC QUESTIONS
- Yes, the museums are open on Mondays`

	s := advice.ParseSections(reply)
	assert.Equal(t, "- Le Marais\n", s.Accommodation)
	assert.Equal(t, "- Euro\n", s.CurrencyPayments)
	assert.Equal(t, "- Metro\n", s.Transportation)
	assert.Equal(t, "- Tip 5-10%\n", s.CulturalGuide)
	assert.Equal(t, "- Croissants\n", s.FoodDining)
	assert.Equal(t, "- Louvre\n", s.Activities)
	assert.Equal(t, "- Type E plugs\n", s.PracticalInfo)
	assert.Equal(t, "- Umbrella\n", s.Packing)
	assert.Equal(t, "- Watch for pickpockets\n", s.SafetyHealth)
	assert.Equal(t, "- Yes, the museums are open on Mondays\n", s.SpecificAnswers)
}

func TestParseSections_UnrecognisedHeaderMergesIntoPrevious(t *testing.T) {
	reply := "1. ACCOMMODATION\n- hostel\n2. MONEY MATTERS\n- cash is king\n3. TRANSPORTATION\n- bus"

	s := advice.ParseSections(reply)
	assert.Equal(t, "- hostel\n2. MONEY MATTERS\n- cash is king\n", s.Accommodation)
	assert.Empty(t, s.CurrencyPayments)
	assert.Equal(t, "- bus\n", s.Transportation)
}

func TestParseSections_KeepsIndentationAndSkipsBlankLines(t *testing.T) {
	reply := "5. FOOD\n\n   - try crêpes\r\n\n   - avoid tourist traps\n"

	s := advice.ParseSections(reply)
	assert.Equal(t, "   - try crêpes\n   - avoid tourist traps\n", s.FoodDining)
}

func TestParseSections_NumberedContentIsNotAHeader(t *testing.T) {
	reply := "6. ACTIVITIES\n1. Eiffel Tower\n2. Louvre"

	s := advice.ParseSections(reply)
	assert.Equal(t, "1. Eiffel Tower\n2. Louvre\n", s.Activities)
	assert.Empty(t, s.Accommodation)
}

func TestExtractPowerAdapter(t *testing.T) {
	reply := `7. PRACTICAL INFORMATION
POWER ADAPTERS:
- Type C and E plugs
- 230V, 50Hz

- Bring a universal adapter
SIM CARDS:
- Orange, SFR`

	assert.Equal(t, "- Type C and E plugs - 230V, 50Hz - Bring a universal adapter", advice.ExtractPowerAdapter(reply))
}

func TestExtractPowerAdapter_ContinuesPastUnrelatedLines(t *testing.T) {
	reply := "Power adapter info\n- Type G\nNote the following\n- 240V\nEmergency contacts\n- 999"

	assert.Equal(t, "- Type G - 240V", advice.ExtractPowerAdapter(reply))
}

func TestExtractPowerAdapter_Missing(t *testing.T) {
	assert.Empty(t, advice.ExtractPowerAdapter("1. ACCOMMODATION\n- hotel"))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"France":                  "france",
		"South Korea":             "south-korea",
		"Côte d'Ivoire":           "côte-divoire",
		"Bosnia and Herzegovina":  "bosnia-and-herzegovina",
		"Guinea-Bissau":           "guinea-bissau",
		"Saint Helena, Ascension": "saint-helena-ascension",
		"":                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, advice.Slugify(in), in)
	}
}

func TestAdapterURL(t *testing.T) {
	base := "https://www.worldstandards.eu/electricity/plug-voltage-by-country"
	fallback := "https://www.worldstandards.eu/electricity/plugs-and-sockets/"

	assert.Equal(t, base+"/south-korea/", advice.AdapterURL(base, fallback, "South Korea"))
	assert.Equal(t, base+"/france/", advice.AdapterURL(base+"/", fallback, "France"))
	assert.Equal(t, fallback, advice.AdapterURL(base, fallback, ""))
}
