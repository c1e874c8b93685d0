package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/service/catalog"
)

func writeCatalogDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		gt.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600)).Required()
	}
	return dir
}

const electricalFile = `[
  {"Grup Adı": "Elektrik", "Konu": "Pano Güvenliği",
   "Tehlike": "Pano önünün kapalı olması",
   "Risk": "Elektrik çarpması",
   "Yasal Dayanak": "Elektrik İç Tesisleri Yönetmeliği",
   "Önlem": "Pano önü her zaman açık tutulmalı",
   "Etkilenenler": "Tüm çalışanlar"},
  {"Grup Adı": "Elektrik", "Konu": "Topraklama",
   "Tehlike": "Topraklama ölçümünün yapılmamış olması",
   "Risk": "Elektrik çarpması, yangın",
   "Önlem": "Yılda bir topraklama ölçümü yaptırılmalı"}
]`

const fireFile = `[
  {"Grup Adı": "Yangın", "Konu": "Acil Çıkış",
   "Tehlike": "Acil çıkış kapısının kilitli olması",
   "Risk": "Tahliye gecikmesi",
   "Etkilenenler": "Tüm çalışanlar ve ziyaretçiler"}
]`

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential IDs in file name order", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{
			"01_elektrik.json": electricalFile,
			"02_yangin.json":   fireFile,
		})
		svc := catalog.New(dir)

		first, err := svc.Get(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Value(t, first.Group).Equal("Elektrik")
		gt.Value(t, first.SourceFile).Equal("01_elektrik.json")

		third, err := svc.Get(ctx, 3)
		gt.NoError(t, err).Required()
		gt.Value(t, third.Group).Equal("Yangın")
		gt.Value(t, third.Hazard).Equal("Acil çıkış kapısının kilitli olması")
	})

	t.Run("Get returns ErrEntryNotFound for unknown ID", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{"risks.json": fireFile})
		svc := catalog.New(dir)

		_, err := svc.Get(ctx, 999)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, catalog.ErrEntryNotFound)).True()
	})

	t.Run("Categories returns sorted unique groups", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{
			"a.json": electricalFile,
			"b.json": fireFile,
		})
		svc := catalog.New(dir)

		categories, err := svc.Categories(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, categories).Equal([]string{"Elektrik", "Yangın"})
	})

	t.Run("Search matches hazard text case-insensitively", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{
			"a.json": electricalFile,
			"b.json": fireFile,
		})
		svc := catalog.New(dir)

		page, err := svc.Search(ctx, interfaces.CatalogQuery{Query: "topraklama"})
		gt.NoError(t, err).Required()
		gt.Value(t, page.Total).Equal(1)
		gt.Bool(t, page.HasMore).False()
		gt.Value(t, page.Results[0].Topic).Equal("Topraklama")
	})

	t.Run("Search filters by category", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{
			"a.json": electricalFile,
			"b.json": fireFile,
		})
		svc := catalog.New(dir)

		page, err := svc.Search(ctx, interfaces.CatalogQuery{Category: "yangın"})
		gt.NoError(t, err).Required()
		gt.Value(t, page.Total).Equal(1)
		gt.Value(t, page.Results[0].Group).Equal("Yangın")
	})

	t.Run("Search paginates with has-more flag", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{
			"a.json": electricalFile,
			"b.json": fireFile,
		})
		svc := catalog.New(dir)

		page1, err := svc.Search(ctx, interfaces.CatalogQuery{Limit: 2})
		gt.NoError(t, err).Required()
		gt.Array(t, page1.Results).Length(2)
		gt.Value(t, page1.Total).Equal(3)
		gt.Bool(t, page1.HasMore).True()

		page2, err := svc.Search(ctx, interfaces.CatalogQuery{Limit: 2, Offset: 2})
		gt.NoError(t, err).Required()
		gt.Array(t, page2.Results).Length(1)
		gt.Bool(t, page2.HasMore).False()
	})

	t.Run("skips malformed file and keeps the rest", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{
			"bad.json":  `{not json at all`,
			"good.json": fireFile,
		})
		svc := catalog.New(dir)

		page, err := svc.Search(ctx, interfaces.CatalogQuery{})
		gt.NoError(t, err).Required()
		gt.Value(t, page.Total).Equal(1)
	})

	t.Run("missing directory yields empty catalog", func(t *testing.T) {
		svc := catalog.New(filepath.Join(t.TempDir(), "no-such-dir"))

		page, err := svc.Search(ctx, interfaces.CatalogQuery{})
		gt.NoError(t, err).Required()
		gt.Value(t, page.Total).Equal(0)

		categories, err := svc.Categories(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, categories).Length(0)
	})

	t.Run("Reload picks up new files", func(t *testing.T) {
		dir := writeCatalogDir(t, map[string]string{"a.json": fireFile})
		svc := catalog.New(dir)

		page, err := svc.Search(ctx, interfaces.CatalogQuery{})
		gt.NoError(t, err).Required()
		gt.Value(t, page.Total).Equal(1)

		gt.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(electricalFile), 0600)).Required()
		gt.NoError(t, svc.Reload(ctx)).Required()

		page, err = svc.Search(ctx, interfaces.CatalogQuery{})
		gt.NoError(t, err).Required()
		gt.Value(t, page.Total).Equal(3)
	})
}
