package queries

import (
	"context"

	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProspectNotFound = errs.New("prospect not found")

type ProspectQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProspectView, error)
}

type prospectQueriesImpl struct {
	reader shared.ProspectReader
}

func NewProspectQueries(reader shared.ProspectReader) ProspectQueries {
	return &prospectQueriesImpl{reader: reader}
}

func (q *prospectQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProspectView, error) {
	p, err := q.reader.FindProspect(ctx, id)
	if err != nil {
		if errs.Is(err, shared.ErrProspectNotFound) {
			return nil, errs.Mark(err, ErrProspectNotFound)
		}
		return nil, errs.Wrap(err, "find prospect")
	}
	return prospectView(p), nil
}
