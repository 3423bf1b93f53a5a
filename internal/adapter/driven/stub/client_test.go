package stub

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

func TestGenerate_DiscoverReturnsCannedNiches(t *testing.T) {
	client := NewClient(0, 0)

	raw, err := client.Generate(context.Background(), driven.GenerateRequest{
		Operation: model.OperationDiscoverNiches,
		Prompt:    "prompt wording is irrelevant",
		Subject:   "cooking",
		Model:     "gpt-4o",
		Shape:     model.ShapeNicheListExtended,
	})
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join("testdata", "cooking_niches.json"))
	require.NoError(t, err)
	assert.JSONEq(t, string(golden), raw)

	var got []model.AnalyzedNiche
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Trang điểm Hiệu ứng Đặc biệt (SFX) chủ đề cooking", got[0].Title)
	assert.Equal(t, []string{"diy", "đồ trang trí", "cooking"}, got[1].Keywords)
	assert.Equal(t, 9, got[2].CompetitionLevel.Score)
}

func TestGenerate_SubjectWithQuotesStaysValidJSON(t *testing.T) {
	client := NewClient(0, 0)

	raw, err := client.Generate(context.Background(), driven.GenerateRequest{
		Operation: model.OperationDiscoverNiches,
		Subject:   `say "hi"`,
	})
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(raw)))
}

func TestGenerate_WriteScriptCarriesHeaderAndModel(t *testing.T) {
	client := NewClient(0, 0)

	got, err := client.Generate(context.Background(), driven.GenerateRequest{
		Operation: model.OperationWriteScript,
		Subject:   "X",
		Model:     "gpt-5",
		Shape:     model.ShapeText,
	})
	require.NoError(t, err)
	assert.Contains(t, got, "Kịch bản Video YouTube")
	assert.True(t, strings.HasPrefix(got, ScriptHeader+"gpt-5)**"))
}

func TestGenerate_UnknownOperationFallsBack(t *testing.T) {
	client := NewClient(0, 0)

	got, err := client.Generate(context.Background(), driven.GenerateRequest{Operation: "summarize"})
	require.NoError(t, err)
	assert.Equal(t, FallbackResponse, got)
}

func TestGenerate_HonorsCancellation(t *testing.T) {
	client := NewClient(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Generate(ctx, driven.GenerateRequest{Operation: model.OperationWriteScript})
	require.ErrorIs(t, err, context.Canceled)
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   model.ValidationFailure
	}{
		{name: "empty", secret: "", want: model.ValidationFailureEmptySecret},
		{name: "wrong prefix", secret: "pk-abcdefghijklmnopqrstuvwxyz", want: model.ValidationFailureMalformed},
		{name: "too short", secret: "sk-abcdefghijklmnopq", want: model.ValidationFailureMalformed},
		{name: "exactly twenty one", secret: "sk-abcdefghijklmnopqr", want: model.ValidationFailureNone},
		{name: "long", secret: "sk-abcdefghijklmnopqrstuvwxyz0123", want: model.ValidationFailureNone},
	}

	client := NewClient(0, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.ValidateKey(context.Background(), tt.secret)
			assert.Equal(t, tt.want == model.ValidationFailureNone, got.Valid())
			if tt.want != model.ValidationFailureNone {
				assert.Equal(t, tt.want, got.Failure)
			}
		})
	}
}
