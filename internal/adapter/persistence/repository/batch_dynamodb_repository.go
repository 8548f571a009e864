package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBatchesTableName = "batches"
	batchesRunDateIndex     = "run_date-index"

	// BatchWriteItem accepts at most 25 put requests.
	batchWriteChunk = 25
	batchWriteTries = 5
)

type linenItemRecord struct {
	OrderID         string `dynamodbav:"order_id,omitempty"`
	LinenTypeID     string `dynamodbav:"linen_type_id"`
	LinenTypeName   string `dynamodbav:"linen_type_name,omitempty"`
	Category        string `dynamodbav:"category"`
	PieceCount      int    `dynamodbav:"piece_count"`
	WeightGrams     int64  `dynamodbav:"weight_grams"`
	EstimatedWeight bool   `dynamodbav:"estimated_weight,omitempty"`
}

type batchItem struct {
	ID                       string            `dynamodbav:"id"`
	RunID                    string            `dynamodbav:"run_id,omitempty"`
	RunDate                  string            `dynamodbav:"run_date"`
	Stage                    string            `dynamodbav:"stage"`
	MachineID                string            `dynamodbav:"machine_id"`
	MachineName              string            `dynamodbav:"machine_name"`
	ProgramID                string            `dynamodbav:"program_id"`
	ProgramName              string            `dynamodbav:"program_name"`
	Category                 string            `dynamodbav:"category"`
	Items                    []linenItemRecord `dynamodbav:"items"`
	TotalLoad                int64             `dynamodbav:"total_load"`
	Capacity                 int64             `dynamodbav:"capacity"`
	LoadUnit                 string            `dynamodbav:"load_unit"`
	UtilizationRate          float64           `dynamodbav:"utilization_rate"`
	EstimatedDurationMinutes int               `dynamodbav:"estimated_duration_minutes"`
	ResourceConsumption      float64           `dynamodbav:"resource_consumption"`
	Status                   string            `dynamodbav:"status"`
	StartedAt                string            `dynamodbav:"started_at,omitempty"`
	FinishedAt               string            `dynamodbav:"finished_at,omitempty"`
}

// BatchDynamoRepository persists planned batches in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: run_date-index (PK: run_date)

type BatchDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBatchRepository = (*BatchDynamoRepository)(nil)

func NewBatchDynamoRepository(ddb *dynamodb.Client, tableName string) *BatchDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("BATCHES_TABLE", defaultBatchesTableName)
	}
	return &BatchDynamoRepository{ddb: ddb, tableName: tableName}
}

// SaveAll writes the batches in chunks, resubmitting unprocessed items.
func (r *BatchDynamoRepository) SaveAll(ctx context.Context, batches []entities.Batch) error {
	for start := 0; start < len(batches); start += batchWriteChunk {
		end := start + batchWriteChunk
		if end > len(batches) {
			end = len(batches)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, b := range batches[start:end] {
			av, err := attributevalue.MarshalMap(toBatchItem(b))
			if err != nil {
				return err
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		pending := map[string][]types.WriteRequest{r.tableName: requests}
		for try := 0; len(pending[r.tableName]) > 0; try++ {
			if try == batchWriteTries {
				return fmt.Errorf("batch write: %d items left unprocessed", len(pending[r.tableName]))
			}
			if try > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Duration(try) * 100 * time.Millisecond):
				}
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func (r *BatchDynamoRepository) GetByID(ctx context.Context, id string) (entities.Batch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Batch{}, err
	}
	if len(out.Item) == 0 {
		return entities.Batch{}, nil
	}

	var it batchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Batch{}, err
	}
	return fromBatchItem(it), nil
}

func (r *BatchDynamoRepository) ListByRunDate(ctx context.Context, runDate string) ([]entities.Batch, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(batchesRunDateIndex),
		KeyConditionExpression: aws.String("run_date = :rd"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rd": &types.AttributeValueMemberS{Value: runDate},
		},
	})

	batches := []entities.Batch{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it batchItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			batches = append(batches, fromBatchItem(it))
		}
	}
	return batches, nil
}

// UpdateStatus is a compare-and-set on the status attribute: of two concurrent callers
// moving the same batch out of `from`, only one succeeds.
func (r *BatchDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.BatchStatus, at time.Time) (entities.Batch, error) {
	expr := "SET #status = :status"
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status":   &types.AttributeValueMemberS{Value: string(to)},
		":expected": &types.AttributeValueMemberS{Value: string(from)},
	}
	switch to {
	case entities.BatchStatusStarted:
		expr += ", #started_at = :at"
		names["#started_at"] = "started_at"
		values[":at"] = &types.AttributeValueMemberS{Value: formatTime(at)}
	case entities.BatchStatusFinished:
		expr += ", #finished_at = :at"
		names["#finished_at"] = "finished_at"
		values[":at"] = &types.AttributeValueMemberS{Value: formatTime(at)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(conditionFailed(err), ErrConditionalCheckFailed) {
			return entities.Batch{}, nil
		}
		return entities.Batch{}, err
	}
	var it batchItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Batch{}, err
	}
	return fromBatchItem(it), nil
}

func toBatchItem(b entities.Batch) batchItem {
	items := make([]linenItemRecord, 0, len(b.Items))
	for _, li := range b.Items {
		items = append(items, linenItemRecord{
			OrderID:         li.OrderID,
			LinenTypeID:     li.LinenTypeID,
			LinenTypeName:   li.LinenTypeName,
			Category:        string(li.Category),
			PieceCount:      li.PieceCount,
			WeightGrams:     li.WeightGrams,
			EstimatedWeight: li.EstimatedWeight,
		})
	}
	return batchItem{
		ID:                       b.ID,
		RunID:                    b.RunID,
		RunDate:                  b.RunDate,
		Stage:                    string(b.Stage),
		MachineID:                b.MachineID,
		MachineName:              b.MachineName,
		ProgramID:                b.ProgramID,
		ProgramName:              b.ProgramName,
		Category:                 string(b.Category),
		Items:                    items,
		TotalLoad:                b.TotalLoad,
		Capacity:                 b.Capacity,
		LoadUnit:                 string(b.LoadUnit),
		UtilizationRate:          b.UtilizationRate,
		EstimatedDurationMinutes: b.EstimatedDurationMinutes,
		ResourceConsumption:      b.ResourceConsumption,
		Status:                   string(b.Status),
		StartedAt:                formatTimePtr(b.StartedAt),
		FinishedAt:               formatTimePtr(b.FinishedAt),
	}
}

func fromBatchItem(it batchItem) entities.Batch {
	items := make([]entities.LinenItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LinenItem{
			OrderID:         li.OrderID,
			LinenTypeID:     li.LinenTypeID,
			LinenTypeName:   li.LinenTypeName,
			Category:        entities.LinenCategory(li.Category),
			PieceCount:      li.PieceCount,
			WeightGrams:     li.WeightGrams,
			EstimatedWeight: li.EstimatedWeight,
		})
	}
	return entities.Batch{
		ID:                       it.ID,
		RunID:                    it.RunID,
		RunDate:                  it.RunDate,
		Stage:                    entities.StageType(it.Stage),
		MachineID:                it.MachineID,
		MachineName:              it.MachineName,
		ProgramID:                it.ProgramID,
		ProgramName:              it.ProgramName,
		Category:                 entities.LinenCategory(it.Category),
		Items:                    items,
		TotalLoad:                it.TotalLoad,
		Capacity:                 it.Capacity,
		LoadUnit:                 entities.LoadUnit(it.LoadUnit),
		UtilizationRate:          it.UtilizationRate,
		EstimatedDurationMinutes: it.EstimatedDurationMinutes,
		ResourceConsumption:      it.ResourceConsumption,
		Status:                   entities.BatchStatus(it.Status),
		StartedAt:                parseTimePtr(it.StartedAt),
		FinishedAt:               parseTimePtr(it.FinishedAt),
	}
}
