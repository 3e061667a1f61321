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

const (
	defaultPaymentsTableName = "payments"
	paymentsExternalIDIndex  = "external_id-index"
	paymentsJobIDIndex       = "job_id-index"
)

type paymentItem struct {
	ID            string `dynamodbav:"id"`
	JobID         string `dynamodbav:"job_id"`
	QuoteID       string `dynamodbav:"quote_id,omitempty"`
	ExternalID    string `dynamodbav:"external_id"`
	Status        string `dynamodbav:"status"`
	AmountCents   int64  `dynamodbav:"amount_cents"`
	Currency      string `dynamodbav:"currency,omitempty"`
	CheckoutURL   string `dynamodbav:"checkout_url,omitempty"`
	FailureReason string `dynamodbav:"failure_reason,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_id-index (PK: external_id)
//   - GSI: job_id-index (PK: job_id)
//
// MarkSucceeded guards on the status not already being succeeded; that one
// condition gives the reconciler its replay safety.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrConditionFailed
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByExternalID(ctx context.Context, externalID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalIDIndex),
		KeyConditionExpression: aws.String("external_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: externalID},
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) MarkSucceeded(ctx context.Context, id string, paidAt time.Time) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :succeeded"),
		UpdateExpression:    aws.String("SET #status = :succeeded, #paid_at = :paid_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#paid_at": "paid_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":succeeded": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusSucceeded)},
			":paid_at":   &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrConditionFailed
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) MarkFailed(ctx context.Context, id, reason string) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// A success that already landed wins over a late failure.
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :succeeded"),
		UpdateExpression:    aws.String("SET #status = :failed, #failure_reason = :reason"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#failure_reason": "failure_reason",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":succeeded": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusSucceeded)},
			":failed":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
			":reason":    &types.AttributeValueMemberS{Value: reason},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrConditionFailed
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		JobID:         p.JobID,
		QuoteID:       p.QuoteID,
		ExternalID:    p.ExternalID,
		Status:        string(p.Status),
		AmountCents:   p.AmountCents,
		Currency:      p.Currency,
		CheckoutURL:   p.CheckoutURL,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		PaidAt:        formatOptionalTime(p.PaidAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Payment{
		ID:            it.ID,
		JobID:         it.JobID,
		QuoteID:       it.QuoteID,
		ExternalID:    it.ExternalID,
		Status:        entities.PaymentStatus(it.Status),
		AmountCents:   it.AmountCents,
		Currency:      it.Currency,
		CheckoutURL:   it.CheckoutURL,
		FailureReason: it.FailureReason,
		CreatedAt:     createdAt,
		PaidAt:        parseOptionalTime(it.PaidAt),
	}
}
