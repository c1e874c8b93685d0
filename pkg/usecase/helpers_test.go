package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/repository/memory"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func bp(v bool) *bool       { return &v }

func rp(v types.Response) *types.Response         { return &v }
func pp(v types.RiskPriority) *types.RiskPriority { return &v }

// warehouseTool is a ten-question fixture tool spanning two topics
func warehouseTool() *model.Tool {
	depot := model.Topic{ID: "depolama", Name: "Depolama", Order: 1}
	for i := 1; i <= 6; i++ {
		depot.Questions = append(depot.Questions, model.Question{
			ID:    types.QuestionID(fmt.Sprintf("depolama-soru-%d", i)),
			Text:  fmt.Sprintf("Depolama kontrol sorusu %d", i),
			Order: i,
		})
	}
	traffic := model.Topic{ID: "arac-trafigi", Name: "Araç Trafiği", Order: 2}
	for i := 1; i <= 4; i++ {
		traffic.Questions = append(traffic.Questions, model.Question{
			ID:    types.QuestionID(fmt.Sprintf("trafik-soru-%d", i)),
			Text:  fmt.Sprintf("Araç trafiği kontrol sorusu %d", i),
			Order: i,
		})
	}

	return &model.Tool{
		ID:   "depo-kontrol",
		Name: "Depo Kontrol Listesi",
		Categories: []model.Category{
			{ID: "genel", Name: "Genel", Order: 1, Topics: []model.Topic{depot, traffic}},
		},
	}
}

var errFixtureCatalogMiss = goerr.New("fixture catalog miss")

type fixtureCatalog struct {
	entries map[int]*model.CatalogEntry
}

func newFixtureCatalog(entries ...*model.CatalogEntry) *fixtureCatalog {
	c := &fixtureCatalog{entries: map[int]*model.CatalogEntry{}}
	for _, e := range entries {
		c.entries[e.ID] = e
	}
	return c
}

func (c *fixtureCatalog) Get(ctx context.Context, id int) (*model.CatalogEntry, error) {
	entry, ok := c.entries[id]
	if !ok {
		return nil, goerr.Wrap(errFixtureCatalogMiss, "unknown id", goerr.V("id", id))
	}
	return entry, nil
}

func (c *fixtureCatalog) Categories(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (c *fixtureCatalog) Search(ctx context.Context, query interfaces.CatalogQuery) (*interfaces.CatalogPage, error) {
	return &interfaces.CatalogPage{}, nil
}

func (c *fixtureCatalog) Reload(ctx context.Context) error {
	return nil
}

func newUseCases(t *testing.T, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()

	registry := model.NewToolRegistry()
	registry.Register(warehouseTool())

	base := []usecase.Option{usecase.WithToolRegistry(registry)}
	return usecase.New(memory.New(), append(base, opts...)...)
}

func newDraftCase(t *testing.T, uc *usecase.UseCases) *model.Case {
	t.Helper()
	created, err := uc.Case.CreateStructuredCase(context.Background(), 1, "depo-kontrol", types.ScoringMethodFineKinney)
	gt.NoError(t, err).Required()
	return created
}

func newFastTrackCase(t *testing.T, uc *usecase.UseCases, method types.ScoringMethod) *model.Case {
	t.Helper()
	created, err := uc.Case.CreateFastTrackCase(context.Background(), 1, method)
	gt.NoError(t, err).Required()
	return created
}
