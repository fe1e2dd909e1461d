package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSubmissionsTableName = "submissions"

type submissionItem struct {
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`

	AnalystName string `dynamodbav:"analyst_name"`
	Client      string `dynamodbav:"client"`

	ProjectTitle         string `dynamodbav:"project_title"`
	ProjectDescription   string `dynamodbav:"project_description,omitempty"`
	BusinessObjective    string `dynamodbav:"business_objective,omitempty"`
	SubscriptionPlan     string `dynamodbav:"subscription_plan"`
	ExpectedDeliverables string `dynamodbav:"expected_deliverables,omitempty"`
	TargetAudience       string `dynamodbav:"target_audience,omitempty"`
	WidgetCount          int    `dynamodbav:"widget_count"`

	DataSources      string `dynamodbav:"data_sources,omitempty"`
	VolumeOfData     string `dynamodbav:"volume_of_data,omitempty"`
	Databases        string `dynamodbav:"databases,omitempty"`
	Integrations     string `dynamodbav:"integrations,omitempty"`
	CloudStorageName string `dynamodbav:"cloud_storage_name,omitempty"`

	Interactivity       string `dynamodbav:"interactivity,omitempty"`
	UserAccessLevels    string `dynamodbav:"user_access_levels,omitempty"`
	DrilldownsPerWidget int    `dynamodbav:"drilldowns_per_widget"`
	Branding            string `dynamodbav:"branding,omitempty"`

	EngagementType string `dynamodbav:"engagement_type,omitempty"`
	StartDate      string `dynamodbav:"start_date,omitempty"`
	EndDate        string `dynamodbav:"end_date,omitempty"`
	DeliveryModel  string `dynamodbav:"delivery_model,omitempty"`

	SupportPlan  string `dynamodbav:"support_plan,omitempty"`
	SupportHours int    `dynamodbav:"support_hours"`

	BIDeveloperLevel string `dynamodbav:"bi_developer_level,omitempty"`
	BIDevMonths      int    `dynamodbav:"bi_dev_months"`

	AnalystNotes string `dynamodbav:"analyst_notes,omitempty"`

	// Lowercased concatenation of the searchable fields, kept alongside the
	// item so Search can run as a single contains() filter.
	SearchText string `dynamodbav:"search_text"`
}

// SubmissionDynamoRepository persists Submission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Nested form sections (client block, deliverables, data sources, databases,
// integrations) are stored as JSON strings: they are only ever read back as a
// whole, never filtered on.

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	it, err := toSubmissionItem(s)
	if err != nil {
		return entities.Submission{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Submission{}, err
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
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Submission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Submission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it)
}

func (r *SubmissionDynamoRepository) Update(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	it, err := toSubmissionItem(s)
	if err != nil {
		return entities.Submission{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Submission{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Submission{}, nil
		}
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *SubmissionDynamoRepository) List(ctx context.Context, limit int32, cursor string) (interfaces.SubmissionPage, error) {
	return r.scan(ctx, limit, cursor, "", nil, nil)
}

func (r *SubmissionDynamoRepository) Search(ctx context.Context, query string, limit int32, cursor string) (interfaces.SubmissionPage, error) {
	return r.scan(ctx, limit, cursor,
		"contains(#search_text, :q)",
		map[string]string{"#search_text": "search_text"},
		map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: strings.ToLower(query)},
		},
	)
}

func (r *SubmissionDynamoRepository) scan(
	ctx context.Context,
	limit int32,
	cursor string,
	filterExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (interfaces.SubmissionPage, error) {
	startKey, err := decodeCursor(cursor)
	if err != nil {
		return interfaces.SubmissionPage{}, err
	}

	input := &dynamodb.ScanInput{
		TableName:         aws.String(r.tableName),
		Limit:             aws.Int32(limit),
		ExclusiveStartKey: startKey,
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return interfaces.SubmissionPage{}, err
	}

	page := interfaces.SubmissionPage{Items: make([]entities.Submission, 0, len(out.Items))}
	for _, raw := range out.Items {
		var it submissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return interfaces.SubmissionPage{}, err
		}
		s, err := fromSubmissionItem(it)
		if err != nil {
			return interfaces.SubmissionPage{}, err
		}
		page.Items = append(page.Items, s)
	}
	page.NextCursor = encodeCursor(out.LastEvaluatedKey)
	return page, nil
}

func toSubmissionItem(s entities.Submission) (submissionItem, error) {
	it := submissionItem{
		ID:                  s.ID,
		CreatedAt:           s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		AnalystName:         s.AnalystName,
		ProjectTitle:        s.ProjectTitle,
		ProjectDescription:  s.ProjectDescription,
		BusinessObjective:   s.BusinessObjective,
		SubscriptionPlan:    s.SubscriptionPlan,
		WidgetCount:         s.WidgetCount,
		VolumeOfData:        s.VolumeOfData,
		CloudStorageName:    s.CloudStorageName,
		DrilldownsPerWidget: s.DrilldownsPerWidget,
		EngagementType:      s.EngagementType,
		SupportPlan:         string(s.SupportPlan),
		SupportHours:        s.SupportHours,
		BIDeveloperLevel:    string(s.BIDeveloperLevel),
		BIDevMonths:         s.BIDevMonths,
		AnalystNotes:        s.AnalystNotes,
		SearchText:          searchText(s),
	}
	if s.StartDate != nil {
		it.StartDate = s.StartDate.UTC().Format(time.RFC3339Nano)
	}
	if s.EndDate != nil {
		it.EndDate = s.EndDate.UTC().Format(time.RFC3339Nano)
	}

	for _, enc := range []struct {
		dst *string
		src any
	}{
		{&it.Client, s.Client},
		{&it.ExpectedDeliverables, s.ExpectedDeliverables},
		{&it.TargetAudience, s.TargetAudience},
		{&it.DataSources, s.DataSources},
		{&it.Databases, s.Databases},
		{&it.Integrations, s.Integrations},
		{&it.Interactivity, s.Interactivity},
		{&it.UserAccessLevels, s.UserAccessLevels},
		{&it.Branding, s.Branding},
		{&it.DeliveryModel, s.DeliveryModel},
	} {
		b, err := json.Marshal(enc.src)
		if err != nil {
			return submissionItem{}, err
		}
		*enc.dst = string(b)
	}
	return it, nil
}

func fromSubmissionItem(it submissionItem) (entities.Submission, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	s := entities.Submission{
		ID:                  it.ID,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
		AnalystName:         it.AnalystName,
		ProjectTitle:        it.ProjectTitle,
		ProjectDescription:  it.ProjectDescription,
		BusinessObjective:   it.BusinessObjective,
		SubscriptionPlan:    it.SubscriptionPlan,
		WidgetCount:         it.WidgetCount,
		VolumeOfData:        it.VolumeOfData,
		CloudStorageName:    it.CloudStorageName,
		DrilldownsPerWidget: it.DrilldownsPerWidget,
		EngagementType:      it.EngagementType,
		SupportPlan:         pricing.SupportPlan(it.SupportPlan),
		SupportHours:        it.SupportHours,
		BIDeveloperLevel:    pricing.BIDeveloperLevel(it.BIDeveloperLevel),
		BIDevMonths:         it.BIDevMonths,
		AnalystNotes:        it.AnalystNotes,
	}
	if it.StartDate != "" {
		t, _ := time.Parse(time.RFC3339Nano, it.StartDate)
		s.StartDate = &t
	}
	if it.EndDate != "" {
		t, _ := time.Parse(time.RFC3339Nano, it.EndDate)
		s.EndDate = &t
	}

	for _, dec := range []struct {
		src string
		dst any
	}{
		{it.Client, &s.Client},
		{it.ExpectedDeliverables, &s.ExpectedDeliverables},
		{it.TargetAudience, &s.TargetAudience},
		{it.DataSources, &s.DataSources},
		{it.Databases, &s.Databases},
		{it.Integrations, &s.Integrations},
		{it.Interactivity, &s.Interactivity},
		{it.UserAccessLevels, &s.UserAccessLevels},
		{it.Branding, &s.Branding},
		{it.DeliveryModel, &s.DeliveryModel},
	} {
		if dec.src == "" {
			continue
		}
		if err := json.Unmarshal([]byte(dec.src), dec.dst); err != nil {
			return entities.Submission{}, err
		}
	}
	return s, nil
}

func searchText(s entities.Submission) string {
	return strings.ToLower(strings.Join([]string{s.Client.Name, s.ProjectTitle, s.AnalystName}, " "))
}

// encodeCursor turns the last evaluated key into an opaque page token. Only
// the id attribute matters since the table has a simple primary key.
func encodeCursor(key map[string]types.AttributeValue) string {
	if len(key) == 0 {
		return ""
	}
	id, ok := key["id"].(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(id.Value))
}

func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, interfaces.ErrInvalidCursor
	}
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: string(raw)},
	}, nil
}
