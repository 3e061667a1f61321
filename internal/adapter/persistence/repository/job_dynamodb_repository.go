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

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID                   string `dynamodbav:"id"`
	ClientID             string `dynamodbav:"client_id"`
	CityID               string `dynamodbav:"city_id"`
	ServiceCategoryID    string `dynamodbav:"service_category_id"`
	Title                string `dynamodbav:"title,omitempty"`
	Description          string `dynamodbav:"description"`
	Zip                  string `dynamodbav:"zip"`
	PreferredTiming      string `dynamodbav:"preferred_timing"`
	Status               string `dynamodbav:"status"`
	AssignedContractorID string `dynamodbav:"assigned_contractor_id,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
	AcceptedAt           string `dynamodbav:"accepted_at,omitempty"`
	CompletedAt          string `dynamodbav:"completed_at,omitempty"`
	CancelledAt          string `dynamodbav:"cancelled_at,omitempty"`
	OriginChannel        string `dynamodbav:"origin_channel"`
	IsTest               bool   `dynamodbav:"is_test"`
	ClientViewToken      string `dynamodbav:"client_view_token"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The status condition expressions below are the platform's only
// concurrency-control primitive: two commands racing on one job cannot both
// pass their guard, so transitions serialize at the table with no lock
// manager and across any number of service instances.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
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
			return entities.Job{}, interfaces.ErrConditionFailed
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, target entities.JobStatus, stamps interfaces.StatusStamps) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :target, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":target":   &types.AttributeValueMemberS{Value: string(target)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":updated_at": &types.AttributeValueMemberS{
			Value: now,
		},
	}
	if stamps.AcceptedAt != nil {
		expr += ", #accepted_at = :accepted_at"
		names["#accepted_at"] = "accepted_at"
		values[":accepted_at"] = &types.AttributeValueMemberS{Value: stamps.AcceptedAt.UTC().Format(time.RFC3339Nano)}
	}
	if stamps.CompletedAt != nil {
		expr += ", #completed_at = :completed_at"
		names["#completed_at"] = "completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: stamps.CompletedAt.UTC().Format(time.RFC3339Nano)}
	}
	if stamps.CancelledAt != nil {
		expr += ", #cancelled_at = :cancelled_at"
		names["#cancelled_at"] = "cancelled_at"
		values[":cancelled_at"] = &types.AttributeValueMemberS{Value: stamps.CancelledAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrConditionFailed
		}
		return entities.Job{}, err
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) AssignContractor(ctx context.Context, id, contractorID string, acceptedAt time.Time) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// Exactly one racing accept passes: the job must still be offered
		// and unassigned.
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :offering AND attribute_not_exists(#assigned)"),
		UpdateExpression:    aws.String("SET #status = :awaiting, #assigned = :contractor, #accepted_at = :accepted_at, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#assigned":    "assigned_contractor_id",
			"#accepted_at": "accepted_at",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":offering":    &types.AttributeValueMemberS{Value: string(entities.JobStatusOfferingContractors)},
			":awaiting":    &types.AttributeValueMemberS{Value: string(entities.JobStatusAwaitingQuote)},
			":contractor":  &types.AttributeValueMemberS{Value: contractorID},
			":accepted_at": &types.AttributeValueMemberS{Value: acceptedAt.UTC().Format(time.RFC3339Nano)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrConditionFailed
		}
		return entities.Job{}, err
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                   j.ID,
		ClientID:             j.ClientID,
		CityID:               j.CityID,
		ServiceCategoryID:    j.ServiceCategoryID,
		Title:                j.Title,
		Description:          j.Description,
		Zip:                  j.Zip,
		PreferredTiming:      j.PreferredTiming,
		Status:               string(j.Status),
		AssignedContractorID: j.AssignedContractorID,
		CreatedAt:            j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            j.UpdatedAt.UTC().Format(time.RFC3339Nano),
		AcceptedAt:           formatOptionalTime(j.AcceptedAt),
		CompletedAt:          formatOptionalTime(j.CompletedAt),
		CancelledAt:          formatOptionalTime(j.CancelledAt),
		OriginChannel:        j.OriginChannel,
		IsTest:               j.IsTest,
		ClientViewToken:      j.ClientViewToken,
	}
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Job{
		ID:                   it.ID,
		ClientID:             it.ClientID,
		CityID:               it.CityID,
		ServiceCategoryID:    it.ServiceCategoryID,
		Title:                it.Title,
		Description:          it.Description,
		Zip:                  it.Zip,
		PreferredTiming:      it.PreferredTiming,
		Status:               entities.JobStatus(it.Status),
		AssignedContractorID: it.AssignedContractorID,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
		AcceptedAt:           parseOptionalTime(it.AcceptedAt),
		CompletedAt:          parseOptionalTime(it.CompletedAt),
		CancelledAt:          parseOptionalTime(it.CancelledAt),
		OriginChannel:        it.OriginChannel,
		IsTest:               it.IsTest,
		ClientViewToken:      it.ClientViewToken,
	}
}
