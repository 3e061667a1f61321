package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractorsTableName = "contractor_profiles"
	contractorsCityIDIndex      = "city_id-index"
)

type contractorItem struct {
	ID                 string   `dynamodbav:"id"`
	UserID             string   `dynamodbav:"user_id"`
	CityID             string   `dynamodbav:"city_id"`
	BaseZip            string   `dynamodbav:"base_zip,omitempty"`
	ServiceCategoryIDs []string `dynamodbav:"service_category_ids"`
	Status             string   `dynamodbav:"status"`
	PublicName         string   `dynamodbav:"public_name"`
	CompletedJobsCount int64    `dynamodbav:"completed_jobs_count"`
	TotalEarningsCents int64    `dynamodbav:"total_earnings_cents"`
	CreatedAt          string   `dynamodbav:"created_at"`
}

// ContractorDynamoRepository persists ContractorProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: city_id-index (PK: city_id)
//
// Category filtering happens client-side after the city query; cities are
// small enough that a contains() filter expression would not pay for its
// own limits handling.

type ContractorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractorRepository = (*ContractorDynamoRepository)(nil)

func NewContractorDynamoRepository(ddb *dynamodb.Client) *ContractorDynamoRepository {
	return &ContractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTOR_PROFILES_TABLE", defaultContractorsTableName),
	}
}

func (r *ContractorDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractorProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractorProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractorProfile{}, nil
	}

	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractorProfile{}, err
	}
	return fromContractorItem(it), nil
}

func (r *ContractorDynamoRepository) ListActiveByCityAndService(ctx context.Context, cityID, serviceCategoryID string, limit int) ([]entities.ContractorProfile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractorsCityIDIndex),
		KeyConditionExpression: aws.String("city_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cityID},
		},
	})
	if err != nil {
		return nil, err
	}

	matched := make([]entities.ContractorProfile, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		c := fromContractorItem(it)
		if c.Status != entities.ContractorStatusActive || !c.MatchesService(serviceCategoryID) {
			continue
		}
		matched = append(matched, c)
	}

	// Matching policy v1: most recently registered first, capped.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *ContractorDynamoRepository) AddSettledEarnings(ctx context.Context, contractorID string, amountCents int64) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: contractorID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #earnings :amount, #completed :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#earnings":  "total_earnings_cents",
			"#completed": "completed_jobs_count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: strconv.FormatInt(amountCents, 10)},
			":one":    &types.AttributeValueMemberN{Value: "1"},
		},
	})
	return err
}

func fromContractorItem(it contractorItem) entities.ContractorProfile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ContractorProfile{
		ID:                 it.ID,
		UserID:             it.UserID,
		CityID:             it.CityID,
		BaseZip:            it.BaseZip,
		ServiceCategoryIDs: it.ServiceCategoryIDs,
		Status:             entities.ContractorStatus(it.Status),
		PublicName:         it.PublicName,
		CompletedJobsCount: it.CompletedJobsCount,
		TotalEarningsCents: it.TotalEarningsCents,
		CreatedAt:          createdAt,
	}
}
