package repository

import (
	"context"
	"errors"
	"time"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesRunDateIndex     = "run_date-index"
)

type invoiceLineItem struct {
	LinenTypeID string `dynamodbav:"linen_type_id"`
	BillingMode string `dynamodbav:"billing_mode"`
	WeightGrams int64  `dynamodbav:"weight_grams"`
	PieceCount  int    `dynamodbav:"piece_count"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Amount      string `dynamodbav:"amount"`
}

type invoiceItem struct {
	ID        string            `dynamodbav:"id"`
	OrderID   string            `dynamodbav:"order_id"`
	RunDate   string            `dynamodbav:"run_date"`
	Amount    string            `dynamodbav:"amount"`
	Lines     []invoiceLineItem `dynamodbav:"lines"`
	Status    string            `dynamodbav:"status"`
	CreatedAt string            `dynamodbav:"created_at"`
	UpdatedAt string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: run_date-index (PK: run_date)
//
// The invoice id is the order id, so a second Create for the same order fails the
// attribute_not_exists condition. Amounts are stored as decimal strings.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tableName string) *InvoiceDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("INVOICES_TABLE", defaultInvoicesTableName)
	}
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, conditionFailed(err)
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByRunDate(ctx context.Context, runDate string) ([]entities.Invoice, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesRunDateIndex),
		KeyConditionExpression: aws.String("run_date = :rd"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rd": &types.AttributeValueMemberS{Value: runDate},
		},
	})

	invoices := []entities.Invoice{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceItem(it))
		}
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(conditionFailed(err), ErrConditionalCheckFailed) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, invoiceLineItem{
			LinenTypeID: l.LinenTypeID,
			BillingMode: string(l.BillingMode),
			WeightGrams: l.WeightGrams,
			PieceCount:  l.PieceCount,
			UnitPrice:   l.UnitPrice.String(),
			Amount:      l.Amount.String(),
		})
	}
	return invoiceItem{
		ID:        inv.ID,
		OrderID:   inv.OrderID,
		RunDate:   inv.RunDate,
		Amount:    inv.Amount.String(),
		Lines:     lines,
		Status:    string(inv.Status),
		CreatedAt: formatTime(inv.CreatedAt),
		UpdatedAt: formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lines := make([]entities.InvoiceLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.InvoiceLine{
			LinenTypeID: l.LinenTypeID,
			BillingMode: entities.BillingMode(l.BillingMode),
			WeightGrams: l.WeightGrams,
			PieceCount:  l.PieceCount,
			UnitPrice:   parseDecimal(l.UnitPrice),
			Amount:      parseDecimal(l.Amount),
		})
	}
	return entities.Invoice{
		ID:        it.ID,
		OrderID:   it.OrderID,
		RunDate:   it.RunDate,
		Amount:    parseDecimal(it.Amount),
		Lines:     lines,
		Status:    entities.InvoiceStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
