package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/example/storefront-state/internal/fixtures"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	baseURL string
	timeout time.Duration
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront-seed",
		Short:         "Seed test data into the ICM backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return err
			}
			if baseURL == "" {
				baseURL = os.Getenv("ICM_BASE_URL")
			}
			if baseURL == "" {
				return errors.New("ICM base URL is required (--base-url or ICM_BASE_URL)")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "ICM base URL, e.g. http://localhost:8081")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(b2bUserCmd())
	return root
}

func b2bUserCmd() *cobra.Command {
	var (
		file string
		reg  fixtures.Registration
	)
	cmd := &cobra.Command{
		Use:   "b2b-user",
		Short: "Create a business customer with its admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := loadRegistration(file, reg, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			if merged.Login == "" || merged.Password == "" {
				return errors.New("login and password are required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			customer, err := fixtures.CreateB2BUserViaREST(ctx, &http.Client{Timeout: timeout}, baseURL, merged)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]string{
				"customerNo": customer.CustomerNo,
				"login":      customer.Credentials.Login,
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "registration file (YAML or JSON)")
	f.StringVar(&reg.Title, "title", "", "title")
	f.StringVar(&reg.FirstName, "first-name", "", "first name")
	f.StringVar(&reg.LastName, "last-name", "", "last name")
	f.StringVar(&reg.Login, "login", "", "login e-mail")
	f.StringVar(&reg.Password, "password", "", "password")
	f.StringVar(&reg.AddressLine1, "address-line1", "", "address line 1")
	f.StringVar(&reg.AddressLine2, "address-line2", "", "address line 2")
	f.StringVar(&reg.AddressLine3, "address-line3", "", "address line 3")
	f.StringVar(&reg.PostalCode, "postal-code", "", "postal code")
	f.StringVar(&reg.City, "city", "", "city")
	f.StringVar(&reg.PhoneHome, "phone", "", "phone")
	f.StringVar(&reg.CountryCodeSwitch, "country", "DE", "country code")
	return cmd
}

// flagFields связывает флаги с полями регистрации для наложения поверх файла.
func flagFields(r *fixtures.Registration) map[string]*string {
	return map[string]*string{
		"title":         &r.Title,
		"first-name":    &r.FirstName,
		"last-name":     &r.LastName,
		"login":         &r.Login,
		"password":      &r.Password,
		"address-line1": &r.AddressLine1,
		"address-line2": &r.AddressLine2,
		"address-line3": &r.AddressLine3,
		"postal-code":   &r.PostalCode,
		"city":          &r.City,
		"phone":         &r.PhoneHome,
		"country":       &r.CountryCodeSwitch,
	}
}

// loadRegistration читает файл регистрации, если он задан, и накладывает явно
// переданные флаги. Без файла используются флаги целиком.
func loadRegistration(path string, fromFlags fixtures.Registration, changed func(string) bool) (fixtures.Registration, error) {
	if path == "" {
		return fromFlags, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fixtures.Registration{}, err
	}
	var reg fixtures.Registration
	// JSON является подмножеством YAML
	if err := yaml.Unmarshal(raw, &reg); err != nil {
		return fixtures.Registration{}, fmt.Errorf("parse %s: %w", path, err)
	}
	src := flagFields(&fromFlags)
	for name, dst := range flagFields(&reg) {
		if changed(name) {
			*dst = *src[name]
		}
	}
	return reg, nil
}
