package config

import (
	"fmt"
	"os"

	"github.com/example/storefront-state/internal/store"
	"gopkg.in/yaml.v3"
)

// AccountSettings содержит параметры аккаунта, видимые клиентскому приложению.
type AccountSettings struct {
	UseSimpleAccount          bool   `yaml:"useSimpleAccount" json:"useSimpleAccount"`
	UserRegistrationLoginType string `yaml:"userRegistrationLoginType" json:"userRegistrationLoginType"`
}

func DefaultAccountSettings() AccountSettings {
	return AccountSettings{UseSimpleAccount: true, UserRegistrationLoginType: "username"}
}

type settingsFile struct {
	Account *struct {
		UseSimpleAccount          *bool   `yaml:"useSimpleAccount"`
		UserRegistrationLoginType *string `yaml:"userRegistrationLoginType"`
	} `yaml:"account"`
}

// GlobalConfiguration отдаёт настройки приложения.
type GlobalConfiguration struct {
	settings AccountSettings
}

func NewGlobalConfiguration(settings AccountSettings) *GlobalConfiguration {
	return &GlobalConfiguration{settings: settings}
}

// ApplicationSettings возвращает поток из одного значения настроек.
func (g *GlobalConfiguration) ApplicationSettings() store.Stream[AccountSettings] {
	return store.Of(g.settings)
}

// LoadSettings читает YAML-файл настроек поверх значений по умолчанию.
// Пустой путь даёт значения по умолчанию.
func LoadSettings(path string) (AccountSettings, error) {
	s := DefaultAccountSettings()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	var f settingsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if f.Account != nil {
		if f.Account.UseSimpleAccount != nil {
			s.UseSimpleAccount = *f.Account.UseSimpleAccount
		}
		if f.Account.UserRegistrationLoginType != nil {
			s.UserRegistrationLoginType = *f.Account.UserRegistrationLoginType
		}
	}
	return s, nil
}
