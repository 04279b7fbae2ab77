package generator

import (
	"bufio"
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Behyna/payment-services/txdatagen/internal/constants"
	"github.com/Behyna/payment-services/txdatagen/internal/model"
	"github.com/Behyna/payment-services/txdatagen/pkg/rng"
)

const writeBufferSize = 64 << 10

// Generator emits a synthetic transaction dataset: one header line followed
// by RecordCount data lines. Primary records (deposit, withdrawal) mint a
// transaction identifier equal to their 1-based position in the stream;
// referencing records (dispute, resolve, chargeback) point at a uniformly
// sampled identifier that has already been issued.
type Generator interface {
	Generate(ctx context.Context, w io.Writer, cmd Command) (Summary, error)
}

type generator struct {
	source   rng.Source
	validate *validator.Validate
	log      *zap.Logger
}

func NewGenerator(source rng.Source, validate *validator.Validate, log *zap.Logger) Generator {
	return &generator{source: source, validate: validate, log: log}
}

// Generate writes the full dataset to w in strict emission order. A run is
// bounded and runs to completion; there is no mid-stream cancellation. Any
// sink failure aborts the run and is fatal to the caller.
func (g *generator) Generate(ctx context.Context, w io.Writer, cmd Command) (Summary, error) {
	if err := g.validate.Struct(cmd); err != nil {
		g.log.Error("rejecting generation command",
			zap.Error(err),
			zap.Int64("recordCount", cmd.RecordCount),
			zap.Int64("maxClientID", cmd.MaxClientID),
			zap.Int64("maxAmount", cmd.MaxAmount))
		return Summary{}, NewServiceError(constants.ErrCodeInvalidArgument, err)
	}

	out := bufio.NewWriterSize(w, writeBufferSize)
	summary := Summary{ByKind: make(map[model.Kind]int64, len(model.Kinds))}

	if _, err := out.WriteString(model.Header + "\n"); err != nil {
		g.log.Error("error writing header", zap.Error(err))
		return summary, NewServiceError(constants.ErrCodeWriteFailed, err)
	}
	summary.Header = true
	summary.BytesOut = int64(len(model.Header)) + 1

	line := make([]byte, 0, 64)
	for i := int64(1); i <= cmd.RecordCount; i++ {
		record := g.next(i, cmd)
		line = record.AppendLine(line[:0])
		if _, err := out.Write(line); err != nil {
			g.log.Error("error writing record", zap.Error(err), zap.Int64("position", i))
			return summary, NewServiceError(constants.ErrCodeWriteFailed, err)
		}
		summary.ByKind[record.Kind]++
		summary.Total++
		summary.BytesOut += int64(len(line))
	}

	if err := out.Flush(); err != nil {
		g.log.Error("error flushing output", zap.Error(err))
		return summary, NewServiceError(constants.ErrCodeWriteFailed, err)
	}

	return summary, nil
}

// next samples the record at position i. Sampling order is fixed (kind,
// client, reference, amount) so that a seeded source reproduces the exact
// same dataset.
func (g *generator) next(i int64, cmd Command) model.Record {
	kind := model.Kinds[g.source.Uniform(0, int64(len(model.Kinds))-1)]
	client := uint32(g.source.Uniform(1, cmd.MaxClientID))

	// Primary kinds mint identifier i; referencing kinds pick any identifier
	// issued so far. At i == 1 the range collapses to {1}.
	txRef := uint64(i)
	if kind.Referencing() {
		txRef = uint64(g.source.Uniform(1, i))
	}

	amount := uint32(g.source.Uniform(1, cmd.MaxAmount))

	return model.Record{Kind: kind, ClientID: client, TxRef: txRef, Amount: amount}
}
