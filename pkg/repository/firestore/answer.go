package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type answerDocument struct {
	ID           string    `firestore:"id"`
	CaseID       int64     `firestore:"case_id"`
	QuestionID   string    `firestore:"question_id"`
	Response     *string   `firestore:"response"`
	Notes        string    `firestore:"notes"`
	RiskPriority *string   `firestore:"risk_priority"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

func toAnswerDocument(a *model.Answer) *answerDocument {
	doc := &answerDocument{
		ID:         a.ID,
		CaseID:     a.CaseID,
		QuestionID: a.QuestionID.String(),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if a.Response != nil {
		resp := a.Response.String()
		doc.Response = &resp
	}
	if a.RiskPriority != nil {
		prio := a.RiskPriority.String()
		doc.RiskPriority = &prio
	}
	return doc
}

func (d *answerDocument) toModel() *model.Answer {
	a := &model.Answer{
		ID:         d.ID,
		CaseID:     d.CaseID,
		QuestionID: types.QuestionID(d.QuestionID),
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.Response != nil {
		resp := types.Response(*d.Response)
		a.Response = &resp
	}
	if d.RiskPriority != nil {
		prio := types.RiskPriority(*d.RiskPriority)
		a.RiskPriority = &prio
	}
	return a
}

type answerRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAnswerRepository(client *firestore.Client) *answerRepository {
	return &answerRepository{client: client}
}

func (r *answerRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_answers"
	}
	return "answers"
}

// Upsert writes the answer under its deterministic (case, question) doc ID
// inside a transaction, so two concurrent submissions of the same question
// end up as one document with the original creation time preserved.
func (r *answerRepository) Upsert(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	key := model.AnswerKey(answer.CaseID, answer.QuestionID)
	docRef := r.client.Collection(r.collection()).Doc(key)

	now := time.Now().UTC()
	stored := *answer
	stored.ID = key
	stored.UpdatedAt = now
	stored.CreatedAt = now

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil {
			var existing answerDocument
			if err := doc.DataTo(&existing); err != nil {
				return goerr.Wrap(err, "failed to unmarshal existing answer")
			}
			stored.CreatedAt = existing.CreatedAt
		} else if status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get existing answer")
		}

		return tx.Set(docRef, toAnswerDocument(&stored))
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert answer",
			goerr.V("case_id", answer.CaseID), goerr.V("question_id", answer.QuestionID))
	}

	return &stored, nil
}

func (r *answerRepository) Get(ctx context.Context, caseID int64, questionID types.QuestionID) (*model.Answer, error) {
	key := model.AnswerKey(caseID, questionID)
	doc, err := r.client.Collection(r.collection()).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "answer not found",
				goerr.V("case_id", caseID), goerr.V("question_id", questionID))
		}
		return nil, goerr.Wrap(err, "failed to get answer",
			goerr.V("case_id", caseID), goerr.V("question_id", questionID))
	}

	var answerDoc answerDocument
	if err := doc.DataTo(&answerDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal answer")
	}

	return answerDoc.toModel(), nil
}

func (r *answerRepository) ListByCase(ctx context.Context, caseID int64) ([]*model.Answer, error) {
	iter := r.client.Collection(r.collection()).
		Where("case_id", "==", caseID).
		OrderBy("question_id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var answers []*model.Answer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate answers", goerr.V("case_id", caseID))
		}

		var answerDoc answerDocument
		if err := doc.DataTo(&answerDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal answer")
		}
		answers = append(answers, answerDoc.toModel())
	}

	return answers, nil
}

func (r *answerRepository) Delete(ctx context.Context, caseID int64, questionID types.QuestionID) error {
	key := model.AnswerKey(caseID, questionID)
	docRef := r.client.Collection(r.collection()).Doc(key)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "answer not found",
				goerr.V("case_id", caseID), goerr.V("question_id", questionID))
		}
		return goerr.Wrap(err, "failed to get answer")
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete answer")
	}

	return nil
}

func (r *answerRepository) deleteByCase(ctx context.Context, caseID int64) error {
	iter := r.client.Collection(r.collection()).
		Where("case_id", "==", caseID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate answers", goerr.V("case_id", caseID))
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete answer")
		}
	}

	return nil
}
