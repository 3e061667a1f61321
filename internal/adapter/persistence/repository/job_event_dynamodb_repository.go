package repository

import (
	"context"
	"encoding/json"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobEventsTableName = "job_events"
	jobEventsJobIDIndex       = "job_id-index"
)

type jobEventItem struct {
	ID        string `dynamodbav:"id"`
	JobID     string `dynamodbav:"job_id"`
	EventType string `dynamodbav:"event_type"`
	ActorKind string `dynamodbav:"actor_kind"`
	ActorID   string `dynamodbav:"actor_id,omitempty"`
	Data      string `dynamodbav:"data,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// JobEventDynamoRepository persists the append-only audit log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Events are never updated or deleted; Append is the only write.

type JobEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobEventRepository = (*JobEventDynamoRepository)(nil)

func NewJobEventDynamoRepository(ddb *dynamodb.Client) *JobEventDynamoRepository {
	return &JobEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_EVENTS_TABLE", defaultJobEventsTableName),
	}
}

func (r *JobEventDynamoRepository) Append(ctx context.Context, ev entities.JobEvent) error {
	it, err := toJobEventItem(ev)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *JobEventDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.JobEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobEventsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.JobEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ev, err := fromJobEventItem(it)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func toJobEventItem(ev entities.JobEvent) (jobEventItem, error) {
	data := ""
	if len(ev.Data) > 0 {
		b, err := json.Marshal(ev.Data)
		if err != nil {
			return jobEventItem{}, err
		}
		data = string(b)
	}
	return jobEventItem{
		ID:        ev.ID,
		JobID:     ev.JobID,
		EventType: ev.EventType,
		ActorKind: string(ev.ActorKind),
		ActorID:   ev.ActorID,
		Data:      data,
		CreatedAt: ev.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromJobEventItem(it jobEventItem) (entities.JobEvent, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var data map[string]any
	if it.Data != "" {
		if err := json.Unmarshal([]byte(it.Data), &data); err != nil {
			return entities.JobEvent{}, err
		}
	}
	return entities.JobEvent{
		ID:        it.ID,
		JobID:     it.JobID,
		EventType: it.EventType,
		ActorKind: entities.ActorKind(it.ActorKind),
		ActorID:   it.ActorID,
		Data:      data,
		CreatedAt: createdAt,
	}, nil
}
