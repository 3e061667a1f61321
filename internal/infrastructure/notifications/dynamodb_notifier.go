package notifications

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID            string `dynamodbav:"id"`
	RecipientKind string `dynamodbav:"recipient_kind"`
	RecipientID   string `dynamodbav:"recipient_id"`
	TemplateID    string `dynamodbav:"template_id"`
	Data          string `dynamodbav:"data,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// DynamoNotifier stores in-app notifications in DynamoDB. There is no push
// channel; recipients poll their own feed.
type DynamoNotifier struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotifier = (*DynamoNotifier)(nil)

func NewDynamoNotifier(ddb *dynamodb.Client) *DynamoNotifier {
	tableName := os.Getenv("NOTIFICATIONS_TABLE")
	if tableName == "" {
		tableName = defaultNotificationsTableName
	}
	return &DynamoNotifier{ddb: ddb, tableName: tableName}
}

func (n *DynamoNotifier) Notify(ctx context.Context, recipientKind entities.ActorKind, recipientID, templateID string, data map[string]any) error {
	it := notificationItem{
		ID:            uuid.New().String(),
		RecipientKind: string(recipientKind),
		RecipientID:   recipientID,
		TemplateID:    templateID,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(data) > 0 {
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		it.Data = string(b)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = n.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(n.tableName),
		Item:      av,
	})
	if err != nil {
		return err
	}

	log.Printf("[notification][infrastructure] stored recipient_kind=%s recipient_id=%s template_id=%s",
		recipientKind, recipientID, templateID)
	return nil
}
