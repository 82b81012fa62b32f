package validation

import (
	"regexp"
	"strings"
)

// Schema names the rule set a payload is checked against
type Schema string

const (
	SchemaSignUp  Schema = "sign-up"
	SchemaSignIn  Schema = "sign-in"
	SchemaArticle Schema = "article"
)

// allowedEmailTLDs restricts email addresses to an allow-listed
// set of top-level domains
var allowedEmailTLDs = map[string]bool{
	"com": true,
	"net": true,
}

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.([a-zA-Z]{2,})$`)
	passwordRegex = regexp.MustCompile(`^[a-zA-Z0-9]{6,30}$`)
)

// Error is a recoverable field-level validation failure. The message is
// the first violated rule only, suitable for redisplaying the form.
type Error struct {
	Schema  Schema
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// SignUpInput is the registration payload
type SignUpInput struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	Bio       string `form:"bio"`
}

// SignInInput is the login payload
type SignInInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// ArticleInput is the article authoring payload. Tags may arrive as a
// single comma-delimited string; CoerceTags splits it before validation.
type ArticleInput struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	Body        string   `form:"body"`
	Tags        []string `form:"tags"`
	ReadingTime string   `form:"readingTime"`
}

// Validator checks and normalizes untrusted request payloads against the
// named schemas. It is constructed once at startup and is safe for
// concurrent use.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSignUp checks the sign-up payload, trimming string fields in
// place. It returns the first violated rule's message only.
func (v *Validator) ValidateSignUp(in *SignUpInput) error {
	var err *Error

	in.FirstName, err = checkName(in.FirstName, "first name", "First name")
	if err != nil {
		return fail(SchemaSignUp, err)
	}
	in.LastName, err = checkName(in.LastName, "last name", "Last name")
	if err != nil {
		return fail(SchemaSignUp, err)
	}

	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return errf(SchemaSignUp, "Please provide a username")
	}
	if len(in.Username) < 3 {
		return errf(SchemaSignUp, "Username must be at least 3 characters")
	}
	if len(in.Username) > 30 {
		return errf(SchemaSignUp, "Username must be at most 30 characters")
	}

	in.Email, err = checkEmail(in.Email)
	if err != nil {
		return fail(SchemaSignUp, err)
	}

	if err := checkPassword(in.Password); err != nil {
		return fail(SchemaSignUp, err)
	}

	in.Bio = strings.TrimSpace(in.Bio)
	if len(in.Bio) > 500 {
		return errf(SchemaSignUp, "Bio must be at most 500 characters")
	}

	return nil
}

// ValidateSignIn checks the login payload, trimming the email in place
func (v *Validator) ValidateSignIn(in *SignInInput) error {
	var err *Error

	in.Email, err = checkEmail(in.Email)
	if err != nil {
		return fail(SchemaSignIn, err)
	}
	if err := checkPassword(in.Password); err != nil {
		return fail(SchemaSignIn, err)
	}
	return nil
}

// ValidateArticle checks the article payload, trimming string fields and
// tag elements in place
func (v *Validator) ValidateArticle(in *ArticleInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return errf(SchemaArticle, "Please provide a title")
	}
	if len(in.Title) < 3 {
		return errf(SchemaArticle, "Title must be at least 3 characters")
	}
	if len(in.Title) > 100 {
		return errf(SchemaArticle, "Title must be at most 100 characters")
	}

	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return errf(SchemaArticle, "Please provide a description")
	}
	if len(in.Description) < 3 {
		return errf(SchemaArticle, "Description must be at least 3 characters")
	}
	if len(in.Description) > 200 {
		return errf(SchemaArticle, "Description must be at most 200 characters")
	}

	in.Body = strings.TrimSpace(in.Body)
	if in.Body == "" {
		return errf(SchemaArticle, "Please provide a body")
	}
	if len(in.Body) < 10 {
		return errf(SchemaArticle, "Body must be at least 10 characters")
	}

	for i, tag := range in.Tags {
		in.Tags[i] = strings.TrimSpace(tag)
	}

	if strings.TrimSpace(in.ReadingTime) == "" {
		return errf(SchemaArticle, "Please provide a reading time")
	}

	return nil
}

// CoerceTags splits a comma-delimited tag string into trimmed elements.
// An empty input yields no tags.
func CoerceTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// Shared field rules

func checkName(value, lower, upper string) (string, *Error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &Error{Message: "Please provide a " + lower}
	}
	if len(value) < 2 {
		return "", &Error{Message: upper + " must be at least 2 characters"}
	}
	if len(value) > 50 {
		return "", &Error{Message: upper + " must be at most 50 characters"}
	}
	return value, nil
}

func checkEmail(email string) (string, *Error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", &Error{Message: "Please provide an email"}
	}
	m := emailRegex.FindStringSubmatch(email)
	if m == nil || !allowedEmailTLDs[strings.ToLower(m[1])] {
		return "", &Error{Message: "Please provide a valid email"}
	}
	if len(email) < 6 {
		return "", &Error{Message: "Email must be at least 6 characters"}
	}
	if len(email) > 50 {
		return "", &Error{Message: "Email must be at most 50 characters"}
	}
	return email, nil
}

func checkPassword(password string) *Error {
	if password == "" {
		return &Error{Message: "Please provide a password"}
	}
	if !passwordRegex.MatchString(password) {
		return &Error{Message: "Password must be at least 6 characters"}
	}
	return nil
}

func errf(schema Schema, msg string) error {
	return &Error{Schema: schema, Message: msg}
}

func fail(schema Schema, err *Error) error {
	err.Schema = schema
	return err
}
