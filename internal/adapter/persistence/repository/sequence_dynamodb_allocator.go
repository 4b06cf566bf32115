package repository

import (
	"context"
	"errors"
	"strconv"

	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "boleto_sequences"

// Day-scoped number allocation.
//
// Counter table: PK date_key (string "YYYYMMDD"), attribute last_value
// (number). NextSequence peeks last_value+1; CreateClaiming commits the
// bump and the boleto insert in a single TransactWriteItems, each side
// condition-guarded, so two callers that peeked the same value resolve
// to one winner and one ErrSequenceConflict. The losing caller
// persisted nothing and can safely retry from the peek.

func (r *BoletoDynamoRepository) NextSequence(ctx context.Context, dateKey string) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.counterTable),
		Key: map[string]types.AttributeValue{
			"date_key": &types.AttributeValueMemberS{Value: dateKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 1, nil
	}

	var counter struct {
		LastValue int64 `dynamodbav:"last_value"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &counter); err != nil {
		return 0, err
	}
	return counter.LastValue + 1, nil
}

func (r *BoletoDynamoRepository) CreateClaiming(ctx context.Context, b entities.Boleto, dateKey string, seq int64) (entities.Boleto, error) {
	bs, err := r.createClaiming(ctx, []entities.Boleto{b}, dateKey, seq)
	if err != nil {
		return entities.Boleto{}, err
	}
	return bs[0], nil
}

func (r *BoletoDynamoRepository) CreateClaimingBatch(ctx context.Context, bs []entities.Boleto, dateKey string, first int64) ([]entities.Boleto, error) {
	return r.createClaiming(ctx, bs, dateKey, first)
}

func (r *BoletoDynamoRepository) createClaiming(ctx context.Context, bs []entities.Boleto, dateKey string, first int64) ([]entities.Boleto, error) {
	if len(bs) == 0 {
		return nil, errors.New("nothing to claim")
	}
	last := first + int64(len(bs)) - 1

	items := make([]types.TransactWriteItem, 0, len(bs)+1)
	items = append(items, types.TransactWriteItem{Update: r.counterClaim(dateKey, first, last)})

	for _, b := range bs {
		av, err := attributevalue.MarshalMap(toBoletoItem(b))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return nil, interfaces.ErrSequenceConflict
		}
		return nil, err
	}
	return bs, nil
}

// counterClaim bumps the day counter from first-1 to last. A first
// claim of the day requires the counter item to not exist yet.
func (r *BoletoDynamoRepository) counterClaim(dateKey string, first, last int64) *types.Update {
	update := &types.Update{
		TableName: aws.String(r.counterTable),
		Key: map[string]types.AttributeValue{
			"date_key": &types.AttributeValueMemberS{Value: dateKey},
		},
		UpdateExpression: aws.String("SET last_value = :last"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":last": &types.AttributeValueMemberN{Value: strconv.FormatInt(last, 10)},
		},
	}

	if first == 1 {
		update.ConditionExpression = aws.String("attribute_not_exists(date_key)")
	} else {
		update.ConditionExpression = aws.String("last_value = :prev")
		update.ExpressionAttributeValues[":prev"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(first-1, 10)}
	}
	return update
}
