package advice

import (
	"fmt"
	"strings"

	"github.com/neexbeast/tripwise/internal/country"
	"github.com/neexbeast/tripwise/internal/weather"
)

const sectionOutline = `Please provide detailed advice in the following sections. Use clear headers and bullet points:

1. ACCOMMODATION RECOMMENDATIONS
   - Recommend specific areas to stay based on their preferences
   - Suggest types of accommodation (hotels, Airbnb, hostels, etc.)
   - Budget considerations
   - Booking tips

2. CURRENCY & PAYMENTS
   - Local currency details
   - Should they carry cash or rely on cards?
   - Is mobile payment (Apple Pay, Google Pay) widely accepted?
   - Where to exchange money
   - Typical costs for meals, transport, activities

3. TRANSPORTATION
   - PUBLIC TRANSPORT: How it works, payment methods, advisability
   - CAR RENTAL: Process, cost, advisability, driving tips
   - TAXIS/RIDE-SHARING: How they work, apps to use, typical costs
   - Getting from airport to city
   - Best way to get around based on their itinerary

4. CULTURAL GUIDE
   - TIPPING CULTURE: Where, when, how much
   - DRESS CODE: What to wear, cultural considerations
   - LOCAL CUSTOMS: Important etiquette, do's and don'ts
   - GREETINGS: Essential phrases in local language with pronunciation
   - CULTURAL SENSITIVITIES: Things to avoid or be aware of

5. FOOD & DINING
   - Must-try local dishes
   - Restaurant recommendations fitting their preferences
   - Where to find specific cuisine types
   - Dietary restriction considerations
   - Street food safety
   - Tipping at restaurants

6. ACTIVITIES & ATTRACTIONS
   - Top recommendations based on their purpose and traveler profile
   - Hidden gems
   - Day trip options
   - Activity costs and booking tips
   - What to do in bad weather

7. PRACTICAL INFORMATION
   - POWER ADAPTERS: Type needed, voltage
   - SIM CARDS: Where to buy, recommended providers, costs
   - EMERGENCY CONTACTS: Police, ambulance, tourist police
   - LANGUAGE: How much English is spoken
   - INTERNET: WiFi availability, data options
   - SAFETY: General safety level, areas to avoid, common scams

8. PACKING RECOMMENDATIONS
   - Clothing based on weather and activities
   - Essential items to bring
   - Things you can buy there vs. bring from home
   - Prohibited items

9. SAFETY & HEALTH
   - General safety tips
   - Common scams to watch for
   - Health precautions
   - Water safety
   - Areas to avoid

10. ANSWERS TO SPECIFIC QUESTIONS
`

const closingInstruction = "Please be specific, practical, and realistic. Include actual costs where relevant " +
	"(in local currency and USD). Make recommendations tailored to their travel profile and purpose."

// BuildPrompt renders the full travel-advice prompt. w and c may be nil.
func BuildPrompt(t Trip, w *weather.Result, c *country.Info) string {
	var b strings.Builder

	b.WriteString("You are an expert travel advisor. Provide comprehensive, practical travel advice for the following trip:\n\n")

	b.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", t.Destination)
	fmt.Fprintf(&b, "- Travel Dates: %s to %s\n", t.StartDate, t.EndDate)
	fmt.Fprintf(&b, "- Duration: %d days\n", t.DurationDays)
	fmt.Fprintf(&b, "- Purpose: %s\n\n", t.Purpose)

	count := t.TravelerCount
	if count <= 0 {
		count = 1
	}
	b.WriteString("TRAVELER PROFILE:\n")
	fmt.Fprintf(&b, "- Type: %s\n", orDefault(t.TravelerType, "Individual"))
	fmt.Fprintf(&b, "- Number of travelers: %d\n", count)
	fmt.Fprintf(&b, "- Group composition: %s\n", orDefault(t.Composition, "N/A"))
	fmt.Fprintf(&b, "- Ages: %s\n\n", orDefault(t.AgeRange, "Not specified"))

	food := "None specified"
	if len(t.FoodPreferences) > 0 {
		food = strings.Join(t.FoodPreferences, ", ")
	}
	b.WriteString("PREFERENCES:\n")
	fmt.Fprintf(&b, "- Food Preferences/Restrictions: %s\n", food)
	fmt.Fprintf(&b, "- Accommodation Type: %s\n", orDefault(t.AccommodationType, "Not specified"))
	fmt.Fprintf(&b, "- Accommodation Location: %s\n", orDefault(t.AccommodationLocation, "Not specified"))
	fmt.Fprintf(&b, "- Budget: %s\n\n", orDefault(t.Budget, "Not specified"))

	b.WriteString("WEATHER FORECAST:\n")
	b.WriteString(weatherBlock(w))
	b.WriteString("\n\nCOUNTRY INFORMATION:\n")
	b.WriteString(countryBlock(c))

	b.WriteString("\n\nSPECIFIC QUESTIONS:\n")
	b.WriteString(orDefault(t.SpecificQuestions, "None"))
	b.WriteString("\n\n")

	b.WriteString(sectionOutline)
	if t.SpecificQuestions != "" {
		fmt.Fprintf(&b, "    - %s\n\n", t.SpecificQuestions)
	} else {
		b.WriteString("    - None provided\n\n")
	}
	b.WriteString(closingInstruction)

	return b.String()
}

// BuildFollowUpPrompt renders the short prompt for a single follow-up question.
func BuildFollowUpPrompt(question string, fc FollowUpContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a knowledgeable travel assistant. A traveler is planning a trip to %s",
		orDefault(fc.Destination, "this destination"))
	if fc.Country != "" {
		fmt.Fprintf(&b, " in %s", fc.Country)
	}
	if fc.Dates.Start != "" {
		fmt.Fprintf(&b, " from %s to %s", fc.Dates.Start, fc.Dates.End)
	}
	fmt.Fprintf(&b, ".\n\nThey have a question: %s\n\n", question)
	b.WriteString("Please provide a helpful, practical, and specific answer. Keep it concise (2-4 sentences) but informative.")

	return b.String()
}

func weatherBlock(w *weather.Result) string {
	if w == nil {
		return "Weather data not available"
	}
	if len(w.Forecast) == 0 {
		return "No forecast available"
	}

	lines := make([]string, 0, len(w.Forecast))
	for _, d := range w.Forecast {
		lines = append(lines, fmt.Sprintf("- %s: %s, High: %.1f°C, Low: %.1f°C, Rain: %d%%",
			d.Date, d.Condition, d.TempMax, d.TempMin, d.RainChance))
	}
	return strings.Join(lines, "\n")
}

func countryBlock(c *country.Info) string {
	if c == nil {
		return "Country data not available"
	}
	return fmt.Sprintf("- Currency: %s\n- Languages: %s\n- Capital: %s\n- Region: %s\n- Timezone: %s",
		orDefault(c.Currency, "N/A"),
		strings.Join(c.Languages, ", "),
		orDefault(c.Capital, "N/A"),
		orDefault(c.Region, "N/A"),
		orDefault(c.Timezone, "N/A"))
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
