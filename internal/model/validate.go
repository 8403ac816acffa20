package model

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the request payloads that reach the store. They are
// compiled once at startup; a panic here means a broken build, not bad
// user input.
//
//go:embed schema/*.json
var schemaFS embed.FS

func mustSchema(name string) *gojsonschema.Schema {
	b, err := schemaFS.ReadFile("schema/" + name)
	if err != nil {
		panic(fmt.Sprintf("model: missing schema %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("model: invalid schema %s: %v", name, err))
	}
	return s
}

var (
	loginSchema       = mustSchema("login.schema.json")
	userSchema        = mustSchema("user.schema.json")
	assessmentSchema  = mustSchema("assessment.schema.json")
	careerMatchSchema = mustSchema("career_match.schema.json")
	skillGapSchema    = mustSchema("skill_gap.schema.json")
	resourceSchema    = mustSchema("resource.schema.json")
	marketTrendSchema = mustSchema("market_trend.schema.json")
)

func validate(schema *gojsonschema.Schema, body []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}

func ValidateLogin(body []byte) error       { return validate(loginSchema, body) }
func ValidateUser(body []byte) error        { return validate(userSchema, body) }
func ValidateAssessment(body []byte) error  { return validate(assessmentSchema, body) }
func ValidateCareerMatch(body []byte) error { return validate(careerMatchSchema, body) }
func ValidateSkillGap(body []byte) error    { return validate(skillGapSchema, body) }
func ValidateResource(body []byte) error    { return validate(resourceSchema, body) }
func ValidateMarketTrend(body []byte) error { return validate(marketTrendSchema, body) }
