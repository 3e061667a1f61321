package repository

import (
	"context"
	"errors"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPayoutsTableName = "payouts"

type payoutItem struct {
	JobID        string `dynamodbav:"job_id"`
	ID           string `dynamodbav:"id"`
	ContractorID string `dynamodbav:"contractor_id"`
	AmountCents  int64  `dynamodbav:"amount_cents"`
	Status       string `dynamodbav:"status"`
	Method       string `dynamodbav:"method"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	PaidAt       string `dynamodbav:"paid_at,omitempty"`
}

// PayoutDynamoRepository persists Payout entities in DynamoDB.
//
// Table requirements:
//   - PK: job_id (string)
//
// We purposely use the job id as PK to guarantee one payout per job: a
// retried completion fails the not-exists condition instead of writing a
// second payout.

type PayoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb *dynamodb.Client) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
	}
}

func (r *PayoutDynamoRepository) Create(ctx context.Context, p entities.Payout) (entities.Payout, error) {
	av, err := attributevalue.MarshalMap(toPayoutItem(p))
	if err != nil {
		return entities.Payout{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#job_id)"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payout{}, interfaces.ErrConditionFailed
		}
		return entities.Payout{}, err
	}
	return p, nil
}

func (r *PayoutDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Payout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) MarkPaid(ctx context.Context, jobID string, paidAt time.Time) (entities.Payout, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConditionExpression: aws.String("attribute_exists(#job_id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :paid, #paid_at = :paid_at"),
		ExpressionAttributeNames: map[string]string{
			"#job_id":  "job_id",
			"#status":  "status",
			"#paid_at": "paid_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.PayoutStatusPending)},
			":paid":    &types.AttributeValueMemberS{Value: string(entities.PayoutStatusPaid)},
			":paid_at": &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payout{}, interfaces.ErrConditionFailed
		}
		return entities.Payout{}, err
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func toPayoutItem(p entities.Payout) payoutItem {
	return payoutItem{
		JobID:        p.JobID,
		ID:           p.ID,
		ContractorID: p.ContractorID,
		AmountCents:  p.AmountCents,
		Status:       string(p.Status),
		Method:       p.Method,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		PaidAt:       formatOptionalTime(p.PaidAt),
	}
}

func fromPayoutItem(it payoutItem) entities.Payout {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Payout{
		JobID:        it.JobID,
		ID:           it.ID,
		ContractorID: it.ContractorID,
		AmountCents:  it.AmountCents,
		Status:       entities.PayoutStatus(it.Status),
		Method:       it.Method,
		Notes:        it.Notes,
		CreatedAt:    createdAt,
		PaidAt:       parseOptionalTime(it.PaidAt),
	}
}
