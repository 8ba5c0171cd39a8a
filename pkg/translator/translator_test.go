package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"todoapi/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()

	enFile := filepath.Join(dir, "en.toml")
	content := []byte(`
todoNotFound = "Todo not found"
validationFailed = "Validation failed"
hello = "Hello english"
`)
	if err := os.WriteFile(enFile, content, 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "hello",
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	expected := "Hello english"
	if msg != expected {
		t.Errorf("expected %q, got %q", expected, msg)
	}
}

func TestInitTranslator_ShippedTranslations(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	en := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	msg, err := en.Localize(&i18n.LocalizeConfig{MessageID: "todoNotFound"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Todo not found" {
		t.Errorf("expected %q, got %q", "Todo not found", msg)
	}

	fr := i18n.NewLocalizer(translator.Translator, translator.LanguageFr)
	msg, err = fr.Localize(&i18n.LocalizeConfig{MessageID: "todoNotFound"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Todo introuvable" {
		t.Errorf("expected %q, got %q", "Todo introuvable", msg)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
}

func TestTranslatorConstants(t *testing.T) {
	if translator.LanguageEn != "en" {
		t.Errorf("expected LanguageEn to be 'en'")
	}
	if translator.LanguageFr != "fr" {
		t.Errorf("expected LanguageFr to be 'fr'")
	}
}
