package config

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/scholarpage/internal/content"
)

// RunWizard asks for the few details that personalize the starter content
// file and returns them as template options.
func RunWizard() (content.TemplateOptions, error) {
	fmt.Println("Welcome to scholarpage! Let's set up your content file.")
	fmt.Println()

	// 1. English name.
	namePrompt := promptui.Prompt{
		Label:    "Your name (English)",
		Validate: required("name"),
	}
	name, err := namePrompt.Run()
	if err != nil {
		return content.TemplateOptions{}, fmt.Errorf("name: %w", err)
	}

	// 2. Chinese name.
	nameZHPrompt := promptui.Prompt{
		Label:   "Your name (Chinese, optional)",
		Default: "",
	}
	nameZH, err := nameZHPrompt.Run()
	if err != nil {
		return content.TemplateOptions{}, fmt.Errorf("chinese name: %w", err)
	}

	// 3. Email.
	emailPrompt := promptui.Prompt{
		Label:    "Email",
		Validate: validateEmail,
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return content.TemplateOptions{}, fmt.Errorf("email: %w", err)
	}

	return content.TemplateOptions{
		Name:   strings.TrimSpace(name),
		NameZH: strings.TrimSpace(nameZH),
		Email:  strings.TrimSpace(email),
	}, nil
}

func required(what string) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fmt.Errorf("%q is not a plain email address", s)
	}
	return nil
}
