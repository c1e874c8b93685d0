package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
)

// Firestore is the Google Cloud Firestore repository backend
type Firestore struct {
	client   *firestore.Client
	cases    *caseRepository
	answers  *answerRepository
	risks    *riskRepository
	measures *measureRepository
	controls *controlRecordRepository
	team     *teamMemberRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, used to isolate test runs
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.cases.collectionPrefix = prefix
		f.answers.collectionPrefix = prefix
		f.risks.collectionPrefix = prefix
		f.measures.collectionPrefix = prefix
		f.controls.collectionPrefix = prefix
		f.team.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	answers := newAnswerRepository(client)
	measures := newMeasureRepository(client)
	controls := newControlRecordRepository(client)
	team := newTeamMemberRepository(client)
	risks := newRiskRepository(client, measures, controls)
	cases := newCaseRepository(client, answers, risks, measures, controls, team)

	f := &Firestore{
		client:   client,
		cases:    cases,
		answers:  answers,
		risks:    risks,
		measures: measures,
		controls: controls,
		team:     team,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Case() interfaces.CaseRepository {
	return f.cases
}

func (f *Firestore) Answer() interfaces.AnswerRepository {
	return f.answers
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risks
}

func (f *Firestore) Measure() interfaces.MeasureRepository {
	return f.measures
}

func (f *Firestore) ControlRecord() interfaces.ControlRecordRepository {
	return f.controls
}

func (f *Firestore) TeamMember() interfaces.TeamMemberRepository {
	return f.team
}

// Close closes the underlying Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
