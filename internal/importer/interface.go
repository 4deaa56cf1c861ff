package importer

import (
	"context"

	"github.com/at-ishikawa/flypysync/internal/userdict"
)

//go:generate mockgen -source=interface.go -destination=../mocks/importer/mock_interface.go -package=mock_importer

type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Reporter interface {
	Report(entries []userdict.Entry)
	ReportMalformed(count int)
}
