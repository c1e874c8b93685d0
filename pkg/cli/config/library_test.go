package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/cli/config"
)

func writeLibraryFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

const depotLibrary = `
id = "depo-kontrol"
name = "Depo kontrol listesi"
description = "Depolama alanları için soru kütüphanesi"

[[category]]
id = "genel"
name = "Genel"
order = 1

[[category.topic]]
id = "depolama"
name = "Depolama düzeni"
order = 2

[[category.topic.question]]
id = "depolama-soru-1"
text = "Raflar zemine sabitlenmiş mi?"
order = 1

[[category.topic.question]]
id = "depolama-soru-2"
text = "İstif yüksekliği sınırları işaretli mi?"
order = 2

[[category.topic]]
id = "trafik"
name = "Saha trafiği"
order = 1

[[category.topic.question]]
id = "trafik-soru-1"
text = "Yaya yolları işaretli mi?"
order = 1
`

func TestLoadTool(t *testing.T) {
	t.Run("parses the full tree", func(t *testing.T) {
		path := writeLibraryFile(t, "depo.toml", depotLibrary)

		tool, err := config.LoadTool(path)
		gt.NoError(t, err).Required()
		gt.Value(t, string(tool.ID)).Equal("depo-kontrol")
		gt.Value(t, tool.Name).Equal("Depo kontrol listesi")
		gt.Value(t, tool.QuestionCount()).Equal(3)
	})

	t.Run("registry sorts topics by order", func(t *testing.T) {
		path := writeLibraryFile(t, "depo.toml", depotLibrary)

		var lib config.Library
		lib.SetPaths([]string{path})
		registry, err := lib.Configure()
		gt.NoError(t, err).Required()

		tool, err := registry.Get("depo-kontrol")
		gt.NoError(t, err).Required()

		questions := tool.Questions()
		gt.Array(t, questions).Length(3)
		gt.Value(t, string(questions[0].TopicID)).Equal("trafik")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadTool(filepath.Join(t.TempDir(), "yok.toml"))
		gt.Error(t, err).Is(config.ErrConfigNotFound)
	})

	t.Run("invalid tool id", func(t *testing.T) {
		path := writeLibraryFile(t, "bad.toml", `
id = "Depo Kontrol"
name = "Geçersiz kimlik"

[[category]]
id = "genel"
name = "Genel"

[[category.topic]]
id = "depolama"
name = "Depolama"

[[category.topic.question]]
id = "soru-1"
text = "Soru metni"
`)
		_, err := config.LoadTool(path)
		gt.Error(t, err)
	})

	t.Run("tool without questions", func(t *testing.T) {
		path := writeLibraryFile(t, "empty.toml", `
id = "bos-arac"
name = "Boş araç"

[[category]]
id = "genel"
name = "Genel"
`)
		_, err := config.LoadTool(path)
		gt.Error(t, err).Is(config.ErrEmptyLibraryConfig)
	})

	t.Run("duplicate question id", func(t *testing.T) {
		path := writeLibraryFile(t, "dup.toml", `
id = "cift-soru"
name = "Yinelenen soru"

[[category]]
id = "genel"
name = "Genel"

[[category.topic]]
id = "konu"
name = "Konu"

[[category.topic.question]]
id = "soru-1"
text = "İlk tanım"

[[category.topic.question]]
id = "soru-1"
text = "İkinci tanım"
`)
		_, err := config.LoadTool(path)
		gt.Error(t, err).Is(config.ErrDuplicateQuestion)
	})

	t.Run("question without text", func(t *testing.T) {
		path := writeLibraryFile(t, "notext.toml", `
id = "metinsiz"
name = "Metinsiz soru"

[[category]]
id = "genel"
name = "Genel"

[[category.topic]]
id = "konu"
name = "Konu"

[[category.topic.question]]
id = "soru-1"
`)
		_, err := config.LoadTool(path)
		gt.Error(t, err).Is(config.ErrMissingText)
	})
}

func TestLibraryConfigure(t *testing.T) {
	t.Run("empty library is allowed", func(t *testing.T) {
		var lib config.Library
		registry, err := lib.Configure()
		gt.NoError(t, err).Required()
		gt.Array(t, registry.List()).Length(0)
	})

	t.Run("same tool in two files is rejected", func(t *testing.T) {
		first := writeLibraryFile(t, "first.toml", depotLibrary)
		second := writeLibraryFile(t, "second.toml", depotLibrary)

		var lib config.Library
		lib.SetPaths([]string{first, second})
		_, err := lib.Configure()
		gt.Error(t, err).Is(config.ErrDuplicateToolID)
	})
}
