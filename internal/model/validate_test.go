package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			"complete profile",
			`{"username":"alice","password":"p","fullName":"Alice A","email":"a@x.com","skills":["Python"],"interests":["ML"],"academicBackground":{"courses":["DB"],"projects":[],"achievements":[]}}`,
			false,
		},
		{"minimal", `{"username":"alice","password":"p","fullName":"Alice A","email":"a@x.com"}`, false},
		{"missing password", `{"username":"alice","fullName":"Alice A","email":"a@x.com"}`, true},
		{"empty username", `{"username":"","password":"p","fullName":"Alice A","email":"a@x.com"}`, true},
		{"skills not strings", `{"username":"alice","password":"p","fullName":"Alice A","email":"a@x.com","skills":[1,2]}`, true},
		{"not an object", `[]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAssessment(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"scheduled technical", `{"userId":1,"title":"Technical Skills","type":"technical","date":"2024-03-10T09:00:00Z","duration":45,"status":"scheduled"}`, false},
		{"completed career", `{"userId":2,"title":"Career Interests","type":"career","date":"2024-02-01T10:00:00Z","duration":60,"status":"completed"}`, false},
		{"type outside enum", `{"userId":1,"title":"Quiz","type":"pop","date":"2024-03-10T09:00:00Z","duration":45,"status":"scheduled"}`, true},
		{"status outside enum", `{"userId":1,"title":"Quiz","type":"soft","date":"2024-03-10T09:00:00Z","duration":45,"status":"done"}`, true},
		{"zero duration", `{"userId":1,"title":"Quiz","type":"soft","date":"2024-03-10T09:00:00Z","duration":0,"status":"scheduled"}`, true},
		{"missing userId", `{"title":"Quiz","type":"soft","date":"2024-03-10T09:00:00Z","duration":45,"status":"scheduled"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssessment([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin([]byte(`{"username":"alice","password":"p"}`)))
	assert.Error(t, ValidateLogin([]byte(`{"username":"alice"}`)))
	assert.Error(t, ValidateLogin([]byte(`{"username":"","password":"p"}`)))
}

func TestValidateCareerMatch(t *testing.T) {
	assert.NoError(t, ValidateCareerMatch([]byte(`{"userId":1,"title":"Data Scientist","matchPercentage":95,"requiredSkills":["Python"],"demandStatus":"High demand"}`)))
	assert.Error(t, ValidateCareerMatch([]byte(`{"userId":1,"title":"Data Scientist","matchPercentage":120}`)))
	assert.Error(t, ValidateCareerMatch([]byte(`{"userId":1,"matchPercentage":50}`)))
}

func TestValidateSkillGap(t *testing.T) {
	assert.NoError(t, ValidateSkillGap([]byte(`{"userId":1,"skill":"SQL","currentLevel":35,"targetCareer":"Data Scientist"}`)))
	assert.Error(t, ValidateSkillGap([]byte(`{"userId":1,"skill":"SQL","currentLevel":350}`)))
	assert.Error(t, ValidateSkillGap([]byte(`{"userId":1,"currentLevel":35}`)))
}

func TestValidateResource(t *testing.T) {
	assert.NoError(t, ValidateResource([]byte(`{"title":"Python for Data Science","type":"course","link":"https://example.com"}`)))
	assert.Error(t, ValidateResource([]byte(`{"title":"Mystery","type":"podcast"}`)))
}

func TestValidateMarketTrend(t *testing.T) {
	assert.NoError(t, ValidateMarketTrend([]byte(`{"careerTitle":"Data Science","month":"Jan","year":2023,"jobCount":110}`)))
	assert.Error(t, ValidateMarketTrend([]byte(`{"careerTitle":"Data Science","month":"Jan","year":2023}`)))
	assert.Error(t, ValidateMarketTrend([]byte(`{"careerTitle":"Data Science","month":"Jan","year":1970,"jobCount":5}`)))
}
