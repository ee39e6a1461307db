package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctrack/internal/model"
)

func TestDocuments(t *testing.T) {
	docs := Documents()
	require.Len(t, docs, 2)

	letter := docs[0]
	assert.Equal(t, "QT-MK-1402-0842", letter.DocNumber)
	assert.Equal(t, model.StatusApproved, letter.Status)
	assert.Len(t, letter.History, 3)

	proposal := docs[1]
	assert.Equal(t, model.DocTypeProposal, proposal.Type)
	d, ok := proposal.Details.(model.ProposalDetails)
	require.True(t, ok)
	assert.Equal(t, model.StageQuoted, d.Stage())
	assert.Equal(t, "45000000", d.EstimatedCost.String())

	for _, doc := range docs {
		assert.True(t, doc.Branch.CanRegister(doc.Type), doc.DocNumber)
	}
}

func TestDocuments_FreshCopies(t *testing.T) {
	a := Documents()
	a[0].History[0].Action = "changed"
	assert.NotEqual(t, "changed", Documents()[0].History[0].Action)
}
