package repository

import (
	"context"
	"strings"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase/interfaces"
)

const defaultTransactionsTableName = "cashier_transactions"

type cashierTransactionItem struct {
	ID          string     `dynamodbav:"id"`
	Type        string     `dynamodbav:"type"`
	Amount      ddbDecimal `dynamodbav:"amount"`
	Date        ddbTime    `dynamodbav:"date"`
	Category    string     `dynamodbav:"category"`
	Description string     `dynamodbav:"description,omitempty"`
	RefJobID    string     `dynamodbav:"ref_job_id,omitempty"`
	RefPOID     string     `dynamodbav:"ref_po_id,omitempty"`
}

// CashierTransactionDynamoRepository reads the cash movements written by the
// cashier module. Records are append-only from this service's point of view.
type CashierTransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICashierTransactionRepository = (*CashierTransactionDynamoRepository)(nil)

func NewCashierTransactionDynamoRepository(ddb DynamoAPI, tableName string) *CashierTransactionDynamoRepository {
	if tableName == "" {
		tableName = defaultTransactionsTableName
	}
	return &CashierTransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CashierTransactionDynamoRepository) List(ctx context.Context) ([]entities.CashierTransaction, error) {
	items, err := scanAll[cashierTransactionItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CashierTransaction, 0, len(items))
	for _, it := range items {
		out = append(out, fromCashierTransactionItem(it))
	}
	return out, nil
}

func fromCashierTransactionItem(it cashierTransactionItem) entities.CashierTransaction {
	return entities.CashierTransaction{
		ID:          it.ID,
		Type:        entities.TransactionType(strings.ToUpper(strings.TrimSpace(it.Type))),
		Amount:      it.Amount.v,
		Date:        it.Date.t,
		Category:    it.Category,
		Description: it.Description,
		RefJobID:    it.RefJobID,
		RefPOID:     it.RefPOID,
	}
}
