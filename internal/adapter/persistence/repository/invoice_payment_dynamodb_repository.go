package repository

import (
	"context"
	"slices"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsInvoiceIDIndex   = "invoice_id-index"
)

// settlementItem is one settlement attempt of an invoice. Amount is the invoice amount
// charged, kept as a string so it round-trips without float drift.
type settlementItem struct {
	ID           string                 `dynamodbav:"id"`
	InvoiceID    string                 `dynamodbav:"invoice_id"`
	Amount       string                 `dynamodbav:"amount,omitempty"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// InvoicePaymentDynamoRepository keeps the settlement attempts of invoices.
//
// Table requirements:
//   - PK: id (string), the provider payment id
//   - GSI: invoice_id-index (PK: invoice_id)
type InvoicePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentDynamoRepository)(nil)

func NewInvoicePaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *InvoicePaymentDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName)
	}
	return &InvoicePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create records a settlement once; a provider id seen before yields ErrConditionalCheckFailed.
func (r *InvoicePaymentDynamoRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	av, err := attributevalue.MarshalMap(toSettlementItem(p))
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}); err != nil {
		return entities.InvoicePayment{}, conditionFailed(err)
	}
	return p, nil
}

func (r *InvoicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil || len(out.Item) == 0 {
		return entities.InvoicePayment{}, err
	}
	var it settlementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvoicePayment{}, err
	}
	return fromSettlementItem(it), nil
}

// ListByInvoiceID walks every page of the invoice index and returns the attempts newest first.
func (r *InvoicePaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})

	var items []settlementItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []settlementItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return settlementsNewestFirst(items), nil
}

func settlementsNewestFirst(items []settlementItem) []entities.InvoicePayment {
	payments := make([]entities.InvoicePayment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromSettlementItem(it))
	}
	slices.SortStableFunc(payments, func(a, b entities.InvoicePayment) int {
		return b.Date.Compare(a.Date)
	})
	return payments
}

func toSettlementItem(p entities.InvoicePayment) settlementItem {
	it := settlementItem{
		ID:           p.ID,
		InvoiceID:    p.InvoiceID,
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
	if !p.Amount.IsZero() {
		it.Amount = p.Amount.StringFixed(2)
	}
	return it
}

func fromSettlementItem(it settlementItem) entities.InvoicePayment {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		amount = decimal.Zero
	}
	return entities.InvoicePayment{
		ID:           it.ID,
		InvoiceID:    it.InvoiceID,
		Amount:       amount,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
