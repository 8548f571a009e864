package repository

import (
	"context"
	"time"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkflowsTableName = "workflows"

type workflowItem struct {
	OrderID      string            `dynamodbav:"order_id"`
	CurrentStage string            `dynamodbav:"current_stage"`
	Completed    bool              `dynamodbav:"completed"`
	CompletedAt  map[string]string `dynamodbav:"completed_at,omitempty"`
	CancelledAt  string            `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// WorkflowDynamoRepository stores one workflow state per order.
//
// Table requirements:
//   - PK: order_id (string)
//
// Stages are stored by name, completion timestamps keyed by stage name.

type WorkflowDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkflowStateRepository = (*WorkflowDynamoRepository)(nil)

func NewWorkflowDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkflowDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("WORKFLOWS_TABLE", defaultWorkflowsTableName)
	}
	return &WorkflowDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkflowDynamoRepository) Get(ctx context.Context, orderID string) (entities.OrderWorkflowState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderWorkflowState{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderWorkflowState{}, nil
	}

	var it workflowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderWorkflowState{}, err
	}
	return fromWorkflowItem(it), nil
}

// Save overwrites the order's state.
func (r *WorkflowDynamoRepository) Save(ctx context.Context, s entities.OrderWorkflowState) error {
	av, err := attributevalue.MarshalMap(toWorkflowItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toWorkflowItem(s entities.OrderWorkflowState) workflowItem {
	completed := make(map[string]string, len(s.CompletedAt))
	for stage, at := range s.CompletedAt {
		completed[stage.String()] = formatTime(at)
	}
	return workflowItem{
		OrderID:      s.OrderID,
		CurrentStage: s.CurrentStage.String(),
		Completed:    s.Completed,
		CompletedAt:  completed,
		CancelledAt:  formatTimePtr(s.CancelledAt),
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func fromWorkflowItem(it workflowItem) entities.OrderWorkflowState {
	stage, _ := entities.ParseWorkflowStage(it.CurrentStage)
	s := entities.OrderWorkflowState{
		OrderID:      it.OrderID,
		CurrentStage: stage,
		Completed:    it.Completed,
		CompletedAt:  make(map[entities.WorkflowStage]time.Time, len(it.CompletedAt)),
		CancelledAt:  parseTimePtr(it.CancelledAt),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	for name, at := range it.CompletedAt {
		if st, ok := entities.ParseWorkflowStage(name); ok {
			s.CompletedAt[st] = parseTime(at)
		}
	}
	return s
}
