package auth

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/georgemunganga/zenith-zap/internal/modules/user"
	"github.com/georgemunganga/zenith-zap/internal/platform/validation"
	"github.com/go-playground/validator/v10"
)

// Age bounds enforced by the signup form.
const (
	minAge = 13
	maxAge = 120
)

// Sports offered by the signup form, as submitted values. The primary_sport
// tag on SignupForm lists the same values.
var Sports = []string{
	"basketball", "soccer", "running", "swimming", "tennis",
	"cycling", "weightlifting", "crossfit", "volleyball", "baseball",
	"football", "hockey", "yoga", "golf", "other",
}

// Diets offered by the signup form, as submitted values. The diet tag on
// SignupForm lists the same values.
var Diets = []string{
	"balanced", "keto", "vegan", "paleo", "mediterranean",
	"vegetarian", "carnivore", "gluten-free", "low-carb", "other",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validation.New()
	v.RegisterValidation("age", func(fl validator.FieldLevel) bool {
		age, err := strconv.Atoi(fl.Field().String())
		return err == nil && age >= minAge && age <= maxAge
	})
	return v
}

var loginMessages = validation.Messages{
	"email":    "Valid email is required",
	"password": "Password is required",
}

var signupMessages = validation.Messages{
	"full_name":       "Full name is required",
	"email":           "Valid email is required",
	"password":        "Password must be at least 8 characters",
	"role":            "Please select a role",
	"age.required":    "Age is required",
	"age":             fmt.Sprintf("Age must be between %d and %d", minAge, maxAge),
	"primary_sport":   "Primary sport is required",
	"sport_intensity": "Please select intensity",
	"diet":            "Diet preference is required",
}

// ValidationErrors maps a form field to its message. It is returned as an
// error by every form check and never escalates beyond the request.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// check runs the struct tags of form and translates failures with messages.
func check(form interface{}, messages validation.Messages) ValidationErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	fields := validation.Fields(err, messages)
	if fields == nil {
		return ValidationErrors{"form": err.Error()}
	}
	return ValidationErrors(fields)
}

// LoginForm is the data posted by the login page.
type LoginForm struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// Validate returns ValidationErrors for malformed input, nil otherwise.
func (f LoginForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return check(f, loginMessages).orNil()
}

// SignupForm is the data collected across both signup steps. Age arrives
// as text, the way the form's number input submits it.
type SignupForm struct {
	FullName       string `json:"full_name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" validate:"required,oneof=player coach"`
	Age            string `json:"age" validate:"required,age"`
	PrimarySport   string `json:"primary_sport" validate:"required,oneof=basketball soccer running swimming tennis cycling weightlifting crossfit volleyball baseball football hockey yoga golf other"`
	SportIntensity string `json:"sport_intensity" validate:"required,oneof=low moderate high"`
	Diet           string `json:"diet" validate:"required,oneof=balanced keto vegan paleo mediterranean vegetarian carnivore gluten-free low-carb other"`
}

// NewSignupForm returns the form with the defaults the page starts from.
func NewSignupForm() SignupForm {
	return SignupForm{
		Role:           string(user.RolePlayer),
		SportIntensity: string(user.IntensityModerate),
		Diet:           "balanced",
	}
}

// stepFields lists the fields each signup step owns.
var stepFields = map[int][]string{
	1: {"full_name", "email", "password", "role"},
	2: {"age", "primary_sport", "sport_intensity", "diet"},
}

// ValidateStep checks only the fields shown on step.
func (f SignupForm) ValidateStep(step int) error {
	fields, ok := stepFields[step]
	if !ok {
		return ValidationErrors{"step": fmt.Sprintf("Unknown step %d", step)}
	}
	all := f.validate()
	errs := ValidationErrors{}
	for _, name := range fields {
		if msg, ok := all[name]; ok {
			errs[name] = msg
		}
	}
	return errs.orNil()
}

// Validate checks every field of both steps.
func (f SignupForm) Validate() error {
	return f.validate().orNil()
}

func (f SignupForm) validate() ValidationErrors {
	return check(f.trimmed(), signupMessages)
}

func (f SignupForm) trimmed() SignupForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Age = strings.TrimSpace(f.Age)
	return f
}

// Profile converts a validated form into registration data.
func (f SignupForm) Profile() user.Profile {
	f = f.trimmed()
	age, _ := strconv.Atoi(f.Age)
	return user.Profile{
		FullName:       f.FullName,
		Email:          f.Email,
		Password:       f.Password,
		Role:           user.Role(f.Role),
		Age:            age,
		PrimarySport:   f.PrimarySport,
		SportIntensity: user.Intensity(f.SportIntensity),
		Diet:           f.Diet,
	}
}
