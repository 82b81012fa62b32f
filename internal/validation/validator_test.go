package validation

import (
	"reflect"
	"strings"
	"testing"
)

func validSignUp() *SignUpInput {
	return &SignUpInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "adal",
		Email:     "ada@example.com",
		Password:  "secret123",
		Bio:       "First programmer",
	}
}

func TestValidateSignUp(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		mutate  func(in *SignUpInput)
		wantMsg string
	}{
		{
			name:   "valid payload",
			mutate: func(in *SignUpInput) {},
		},
		{
			name:   "valid payload without bio",
			mutate: func(in *SignUpInput) { in.Bio = "" },
		},
		{
			name:    "missing first name",
			mutate:  func(in *SignUpInput) { in.FirstName = "  " },
			wantMsg: "Please provide a first name",
		},
		{
			name:    "first name too short",
			mutate:  func(in *SignUpInput) { in.FirstName = "A" },
			wantMsg: "First name must be at least 2 characters",
		},
		{
			name:    "last name too long",
			mutate:  func(in *SignUpInput) { in.LastName = strings.Repeat("x", 51) },
			wantMsg: "Last name must be at most 50 characters",
		},
		{
			name:    "missing username",
			mutate:  func(in *SignUpInput) { in.Username = "" },
			wantMsg: "Please provide a username",
		},
		{
			name:    "username too short",
			mutate:  func(in *SignUpInput) { in.Username = "ab" },
			wantMsg: "Username must be at least 3 characters",
		},
		{
			name:    "missing email",
			mutate:  func(in *SignUpInput) { in.Email = "" },
			wantMsg: "Please provide an email",
		},
		{
			name:    "malformed email",
			mutate:  func(in *SignUpInput) { in.Email = "not-an-email" },
			wantMsg: "Please provide a valid email",
		},
		{
			name:    "email TLD not allow-listed",
			mutate:  func(in *SignUpInput) { in.Email = "ada@example.org" },
			wantMsg: "Please provide a valid email",
		},
		{
			name:    "missing password",
			mutate:  func(in *SignUpInput) { in.Password = "" },
			wantMsg: "Please provide a password",
		},
		{
			name:    "password too short",
			mutate:  func(in *SignUpInput) { in.Password = "abc12" },
			wantMsg: "Password must be at least 6 characters",
		},
		{
			name:    "password with non-alphanumeric characters",
			mutate:  func(in *SignUpInput) { in.Password = "secret!123" },
			wantMsg: "Password must be at least 6 characters",
		},
		{
			name:    "bio too long",
			mutate:  func(in *SignUpInput) { in.Bio = strings.Repeat("b", 501) },
			wantMsg: "Bio must be at most 500 characters",
		},
		{
			name: "first failing rule wins",
			mutate: func(in *SignUpInput) {
				in.FirstName = ""
				in.Email = "broken"
				in.Password = ""
			},
			wantMsg: "Please provide a first name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignUp()
			tt.mutate(in)

			err := validator.ValidateSignUp(in)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ValidateSignUp() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateSignUp() expected error %q, got nil", tt.wantMsg)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("ValidateSignUp() error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateSignUpTrimsFields(t *testing.T) {
	validator := NewValidator()

	in := validSignUp()
	in.FirstName = "  Ada  "
	in.Email = " ada@example.com "
	in.Bio = "  bio  "

	if err := validator.ValidateSignUp(in); err != nil {
		t.Fatalf("ValidateSignUp() unexpected error: %v", err)
	}
	if in.FirstName != "Ada" {
		t.Errorf("FirstName not trimmed: %q", in.FirstName)
	}
	if in.Email != "ada@example.com" {
		t.Errorf("Email not trimmed: %q", in.Email)
	}
	if in.Bio != "bio" {
		t.Errorf("Bio not trimmed: %q", in.Bio)
	}
}

func TestValidateSignIn(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		in      SignInInput
		wantMsg string
	}{
		{
			name: "valid payload",
			in:   SignInInput{Email: "ada@example.net", Password: "secret123"},
		},
		{
			name:    "missing email",
			in:      SignInInput{Password: "secret123"},
			wantMsg: "Please provide an email",
		},
		{
			name:    "invalid email",
			in:      SignInInput{Email: "nope", Password: "secret123"},
			wantMsg: "Please provide a valid email",
		},
		{
			name:    "missing password",
			in:      SignInInput{Email: "ada@example.com"},
			wantMsg: "Please provide a password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateSignIn(&tt.in)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ValidateSignIn() unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("ValidateSignIn() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func validArticle() *ArticleInput {
	return &ArticleInput{
		Title:       "A Title",
		Description: "A short description",
		Body:        "This body is long enough.",
		Tags:        []string{"go", "web"},
		ReadingTime: "5 min",
	}
}

func TestValidateArticle(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		mutate  func(in *ArticleInput)
		wantMsg string
	}{
		{
			name:   "valid payload",
			mutate: func(in *ArticleInput) {},
		},
		{
			name:   "valid payload without tags",
			mutate: func(in *ArticleInput) { in.Tags = nil },
		},
		{
			name:    "missing title",
			mutate:  func(in *ArticleInput) { in.Title = "" },
			wantMsg: "Please provide a title",
		},
		{
			name:    "title too short",
			mutate:  func(in *ArticleInput) { in.Title = "ab" },
			wantMsg: "Title must be at least 3 characters",
		},
		{
			name:    "title too long",
			mutate:  func(in *ArticleInput) { in.Title = strings.Repeat("t", 101) },
			wantMsg: "Title must be at most 100 characters",
		},
		{
			name:    "description too long",
			mutate:  func(in *ArticleInput) { in.Description = strings.Repeat("d", 201) },
			wantMsg: "Description must be at most 200 characters",
		},
		{
			name:    "body too short",
			mutate:  func(in *ArticleInput) { in.Body = "short" },
			wantMsg: "Body must be at least 10 characters",
		},
		{
			name:    "missing reading time",
			mutate:  func(in *ArticleInput) { in.ReadingTime = "  " },
			wantMsg: "Please provide a reading time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validArticle()
			tt.mutate(in)

			err := validator.ValidateArticle(in)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ValidateArticle() unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("ValidateArticle() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestCoerceTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma-delimited with stray whitespace",
			raw:  "a, b ,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "single tag",
			raw:  "golang",
			want: []string{"golang"},
		},
		{
			name: "empty string yields no tags",
			raw:  "  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceTags(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CoerceTags(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
