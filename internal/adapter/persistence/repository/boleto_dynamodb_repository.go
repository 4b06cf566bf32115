package repository

import (
	"context"
	"errors"
	"time"

	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultBoletosTableName = "boletos"
	boletosNumberIndex      = "number-index"
	boletosStudentRefIndex  = "student_ref-index"
	boletosStatusIndex      = "status-index"

	dueDateLayout = "2006-01-02"
)

type boletoItem struct {
	ID            string `dynamodbav:"id"`
	Number        string `dynamodbav:"number"`
	StudentRef    string `dynamodbav:"student_ref"`
	CourseRef     string `dynamodbav:"course_ref"`
	Amount        string `dynamodbav:"amount"`
	DueDate       string `dynamodbav:"due_date"`
	Status        string `dynamodbav:"status"`
	BillingCode   string `dynamodbav:"billing_code"`
	FormattedLine string `dynamodbav:"formatted_line"`

	PixEnabled        bool   `dynamodbav:"pix_discount_enabled"`
	PixUsed           bool   `dynamodbav:"pix_discount_used"`
	PixDiscountAmount string `dynamodbav:"pix_discount_amount"`
	PixMinAmount      string `dynamodbav:"pix_discount_min_amount"`

	PaidAmount   string `dynamodbav:"paid_amount,omitempty"`
	PaidAt       string `dynamodbav:"paid_at,omitempty"`
	CancelReason string `dynamodbav:"cancel_reason,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BoletoDynamoRepository persists Boleto entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: number-index (PK: number)
//   - GSI: student_ref-index (PK: student_ref)
//   - GSI: status-index (PK: status)
//
// Number uniqueness is not enforced by the GSI; it follows from the
// sequence counter claim in CreateClaiming (see the allocator file).

type BoletoDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	counterTable string
}

var _ interfaces.IBoletoRepository = (*BoletoDynamoRepository)(nil)

func NewBoletoDynamoRepository(ddb *dynamodb.Client) *BoletoDynamoRepository {
	return &BoletoDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("BOLETOS_TABLE", defaultBoletosTableName),
		counterTable: getenvDefault("BOLETO_SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *BoletoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Boleto, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Boleto{}, err
	}
	if len(out.Item) == 0 {
		return entities.Boleto{}, nil
	}

	var it boletoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Boleto{}, err
	}
	return fromBoletoItem(it)
}

func (r *BoletoDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Boleto, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(boletosNumberIndex),
		KeyConditionExpression: aws.String("#n = :number"),
		ExpressionAttributeNames: map[string]string{
			"#n": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Boleto{}, err
	}
	if len(out.Items) == 0 {
		return entities.Boleto{}, nil
	}

	var it boletoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Boleto{}, err
	}
	return fromBoletoItem(it)
}

func (r *BoletoDynamoRepository) ListByStudentRef(ctx context.Context, studentRef string) ([]entities.Boleto, error) {
	return r.queryIndex(ctx, boletosStudentRefIndex, "student_ref", studentRef)
}

func (r *BoletoDynamoRepository) ListByStatus(ctx context.Context, status entities.BoletoStatus) ([]entities.Boleto, error) {
	return r.queryIndex(ctx, boletosStatusIndex, "status", string(status))
}

func (r *BoletoDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Boleto, error) {
	items := make([]entities.Boleto, 0)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": key,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it boletoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			b, err := fromBoletoItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, b)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *BoletoDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.BoletoStatus, patch interfaces.StatusPatch) (entities.Boleto, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	update := "SET #status = :to, updated_at = :now"
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":now":  &types.AttributeValueMemberS{Value: now},
	}

	if patch.PaidAmount != nil {
		update += ", paid_amount = :paid_amount"
		values[":paid_amount"] = &types.AttributeValueMemberS{Value: patch.PaidAmount.String()}
	}
	if patch.PaidAt != nil {
		update += ", paid_at = :paid_at"
		values[":paid_at"] = &types.AttributeValueMemberS{Value: patch.PaidAt.UTC().Format(time.RFC3339Nano)}
	}
	if patch.CancelReason != "" {
		update += ", cancel_reason = :cancel_reason"
		values[":cancel_reason"] = &types.AttributeValueMemberS{Value: patch.CancelReason}
	}
	if patch.PixUsed {
		update += ", pix_discount_used = :pix_used"
		values[":pix_used"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id) AND #status = :from"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return entities.Boleto{}, interfaces.ErrStaleStatus
		}
		return entities.Boleto{}, err
	}

	var it boletoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Boleto{}, err
	}
	return fromBoletoItem(it)
}

func (r *BoletoDynamoRepository) MarkPixUsed(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET pix_discount_used = :used, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND pix_discount_enabled = :enabled AND pix_discount_used = :notused"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":used":    &types.AttributeValueMemberBOOL{Value: true},
			":notused": &types.AttributeValueMemberBOOL{Value: false},
			":enabled": &types.AttributeValueMemberBOOL{Value: true},
			":now":     &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			// Disabled or already used: idempotent no-op.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toBoletoItem(b entities.Boleto) boletoItem {
	it := boletoItem{
		ID:                b.ID,
		Number:            b.Number,
		StudentRef:        b.StudentRef,
		CourseRef:         b.CourseRef,
		Amount:            b.Amount.String(),
		DueDate:           b.DueDate.UTC().Format(dueDateLayout),
		Status:            string(b.Status),
		BillingCode:       b.BillingCode,
		FormattedLine:     b.FormattedLine,
		PixEnabled:        b.Pix.Enabled,
		PixUsed:           b.Pix.Used,
		PixDiscountAmount: b.Pix.DiscountAmount.String(),
		PixMinAmount:      b.Pix.MinAmount.String(),
		CancelReason:      b.CancelReason,
		CreatedAt:         b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.PaidAmount != nil {
		it.PaidAmount = b.PaidAmount.String()
	}
	if b.PaidAt != nil {
		it.PaidAt = b.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBoletoItem(it boletoItem) (entities.Boleto, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Boleto{}, err
	}
	dueDate, err := time.Parse(dueDateLayout, it.DueDate)
	if err != nil {
		return entities.Boleto{}, err
	}

	b := entities.Boleto{
		ID:            it.ID,
		Number:        it.Number,
		StudentRef:    it.StudentRef,
		CourseRef:     it.CourseRef,
		Amount:        amount,
		DueDate:       dueDate,
		Status:        entities.BoletoStatus(it.Status),
		BillingCode:   it.BillingCode,
		FormattedLine: it.FormattedLine,
		CancelReason:  it.CancelReason,
		Pix: entities.PixDiscount{
			Enabled: it.PixEnabled,
			Used:    it.PixUsed,
		},
	}
	b.Pix.DiscountAmount = decimalOrZero(it.PixDiscountAmount)
	b.Pix.MinAmount = decimalOrZero(it.PixMinAmount)

	if it.PaidAmount != "" {
		v, err := decimal.NewFromString(it.PaidAmount)
		if err != nil {
			return entities.Boleto{}, err
		}
		b.PaidAmount = &v
	}
	if it.PaidAt != "" {
		t, err := time.Parse(time.RFC3339Nano, it.PaidAt)
		if err != nil {
			return entities.Boleto{}, err
		}
		b.PaidAt = &t
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	b.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return b, nil
}

func decimalOrZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}
