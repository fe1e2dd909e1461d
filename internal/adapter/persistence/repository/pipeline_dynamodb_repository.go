package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"biquote/internal/domain/entities"
	"biquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPipelineTableName = "pipeline_items"

type stageChangeItem struct {
	Stage     string `dynamodbav:"stage"`
	ChangedAt string `dynamodbav:"changed_at"`
	ChangedBy string `dynamodbav:"changed_by"`
}

type pipelineItem struct {
	ID           string            `dynamodbav:"id"`
	SubmissionID string            `dynamodbav:"submission_id"`
	Stage        string            `dynamodbav:"stage"`
	ChangeLog    []stageChangeItem `dynamodbav:"change_log"`
	Quote        string            `dynamodbav:"quote,omitempty"`
	Notes        string            `dynamodbav:"notes,omitempty"`
	Revision     int64             `dynamodbav:"revision"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// PipelineDynamoRepository persists PipelineItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// We purposely use the submission id as PK (pipeline item ID) to guarantee
// one pipeline item per submission.
//
// Every update is conditioned on the stored revision and bumps it by one, so
// a stage change, its change-log entry and the quote always land together or
// not at all. The change log is a native DynamoDB list so appends never
// rewrite history; the quote is a JSON string since it is only ever read back
// whole.

type PipelineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPipelineRepository = (*PipelineDynamoRepository)(nil)

func NewPipelineDynamoRepository(ddb *dynamodb.Client) *PipelineDynamoRepository {
	return &PipelineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PIPELINE_TABLE", defaultPipelineTableName),
	}
}

func (r *PipelineDynamoRepository) Create(ctx context.Context, item entities.PipelineItem) (entities.PipelineItem, error) {
	it, err := toPipelineItem(item)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PipelineItem{}, err
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
		return entities.PipelineItem{}, err
	}
	return item, nil
}

func (r *PipelineDynamoRepository) GetByID(ctx context.Context, id string) (entities.PipelineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.PipelineItem{}, nil
	}

	var it pipelineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PipelineItem{}, err
	}
	return fromPipelineItem(it)
}

func (r *PipelineDynamoRepository) List(ctx context.Context) ([]entities.PipelineItem, error) {
	items := make([]entities.PipelineItem, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it pipelineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			item, err := fromPipelineItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PipelineDynamoRepository) UpdateStage(ctx context.Context, id string, change entities.StageChange, expectedRevision int64) (entities.PipelineItem, error) {
	changeAV, err := marshalChange(change)
	if err != nil {
		return entities.PipelineItem{}, err
	}

	return r.update(ctx, id, expectedRevision, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stage = :stage, #change_log = list_append(#change_log, :change)"
		vals := map[string]types.AttributeValue{
			":stage":  &types.AttributeValueMemberS{Value: string(change.Stage)},
			":change": changeAV,
		}
		names := map[string]string{
			"#stage":      "stage",
			"#change_log": "change_log",
		}
		return expr, vals, names
	})
}

func (r *PipelineDynamoRepository) UpdateStageWithQuote(ctx context.Context, id string, change entities.StageChange, quote entities.Quote, expectedRevision int64) (entities.PipelineItem, error) {
	changeAV, err := marshalChange(change)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	quoteJSON, err := json.Marshal(quote)
	if err != nil {
		return entities.PipelineItem{}, err
	}

	return r.update(ctx, id, expectedRevision, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stage = :stage, #change_log = list_append(#change_log, :change), #quote = :quote"
		vals := map[string]types.AttributeValue{
			":stage":  &types.AttributeValueMemberS{Value: string(change.Stage)},
			":change": changeAV,
			":quote":  &types.AttributeValueMemberS{Value: string(quoteJSON)},
		}
		names := map[string]string{
			"#stage":      "stage",
			"#change_log": "change_log",
			"#quote":      "quote",
		}
		return expr, vals, names
	})
}

func (r *PipelineDynamoRepository) SaveQuote(ctx context.Context, id string, quote entities.Quote, expectedRevision int64) (entities.PipelineItem, error) {
	quoteJSON, err := json.Marshal(quote)
	if err != nil {
		return entities.PipelineItem{}, err
	}

	return r.update(ctx, id, expectedRevision, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quote = :quote"
		vals := map[string]types.AttributeValue{
			":quote": &types.AttributeValueMemberS{Value: string(quoteJSON)},
		}
		names := map[string]string{
			"#quote": "quote",
		}
		return expr, vals, names
	})
}

func (r *PipelineDynamoRepository) SetDocumentRef(ctx context.Context, id string, ref string, expectedRevision int64) (entities.PipelineItem, error) {
	// The document reference lives inside the stored quote JSON, so this is
	// a read-modify-write guarded by the same revision condition.
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if item.ID == "" || item.Quote == nil {
		return entities.PipelineItem{}, nil
	}

	quote := *item.Quote
	quote.DocumentRef = ref
	quoteJSON, err := json.Marshal(quote)
	if err != nil {
		return entities.PipelineItem{}, err
	}

	return r.update(ctx, id, expectedRevision, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quote = :quote"
		vals := map[string]types.AttributeValue{
			":quote": &types.AttributeValueMemberS{Value: string(quoteJSON)},
		}
		names := map[string]string{
			"#quote": "quote",
		}
		return expr, vals, names
	})
}

func (r *PipelineDynamoRepository) update(
	ctx context.Context,
	id string,
	expectedRevision int64,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PipelineItem, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build()

	updateExpr += ", #revision = :next_revision, #updated_at = :updated_at"
	values[":revision"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedRevision, 10)}
	values[":next_revision"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedRevision+1, 10)}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: now}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #revision = :revision"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#revision": "revision", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Distinguish a missing item from a stale revision.
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.PipelineItem{}, getErr
			}
			if existing.ID == "" {
				return entities.PipelineItem{}, nil
			}
			return entities.PipelineItem{}, interfaces.ErrRevisionConflict
		}
		return entities.PipelineItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PipelineItem{}, nil
	}
	var it pipelineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PipelineItem{}, err
	}
	return fromPipelineItem(it)
}

func marshalChange(change entities.StageChange) (types.AttributeValue, error) {
	av, err := attributevalue.MarshalList([]stageChangeItem{toStageChangeItem(change)})
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberL{Value: av}, nil
}

func toStageChangeItem(c entities.StageChange) stageChangeItem {
	return stageChangeItem{
		Stage:     string(c.Stage),
		ChangedAt: c.ChangedAt.UTC().Format(time.RFC3339Nano),
		ChangedBy: c.ChangedBy,
	}
}

func toPipelineItem(item entities.PipelineItem) (pipelineItem, error) {
	it := pipelineItem{
		ID:           item.ID,
		SubmissionID: item.SubmissionID,
		Stage:        string(item.Stage),
		ChangeLog:    make([]stageChangeItem, 0, len(item.ChangeLog)),
		Notes:        item.Notes,
		Revision:     item.Revision,
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, c := range item.ChangeLog {
		it.ChangeLog = append(it.ChangeLog, toStageChangeItem(c))
	}
	if item.Quote != nil {
		quoteJSON, err := json.Marshal(item.Quote)
		if err != nil {
			return pipelineItem{}, err
		}
		it.Quote = string(quoteJSON)
	}
	return it, nil
}

func fromPipelineItem(it pipelineItem) (entities.PipelineItem, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	item := entities.PipelineItem{
		ID:           it.ID,
		SubmissionID: it.SubmissionID,
		Stage:        entities.Stage(it.Stage),
		ChangeLog:    make([]entities.StageChange, 0, len(it.ChangeLog)),
		Notes:        it.Notes,
		Revision:     it.Revision,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	for _, c := range it.ChangeLog {
		changedAt, _ := time.Parse(time.RFC3339Nano, c.ChangedAt)
		item.ChangeLog = append(item.ChangeLog, entities.StageChange{
			Stage:     entities.Stage(c.Stage),
			ChangedAt: changedAt,
			ChangedBy: c.ChangedBy,
		})
	}
	if it.Quote != "" {
		var quote entities.Quote
		if err := json.Unmarshal([]byte(it.Quote), &quote); err != nil {
			return entities.PipelineItem{}, err
		}
		item.Quote = &quote
	}
	return item, nil
}
