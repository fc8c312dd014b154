package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID            string `dynamodbav:"id"`
	PlateNumber   string `dynamodbav:"plate_number"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	VehicleModel  string `dynamodbav:"vehicle_model,omitempty"`
	VehicleColor  string `dynamodbav:"vehicle_color,omitempty"`
	Insurance     string `dynamodbav:"insurance,omitempty"`

	VehicleStatus  string `dynamodbav:"vehicle_status"`
	WorkStatus     string `dynamodbav:"work_status"`
	WONumber       string `dynamodbav:"wo_number"`
	ServiceAdvisor string `dynamodbav:"service_advisor"`

	Estimate   estimateAttr `dynamodbav:"estimate"`
	Cost       costAttr     `dynamodbav:"cost"`
	LaborPrice ddbDecimal   `dynamodbav:"labor_price"`
	PartsPrice ddbDecimal   `dynamodbav:"parts_price"`

	HasInvoice bool `dynamodbav:"has_invoice"`
	IsClosed   bool `dynamodbav:"is_closed"`
	IsDeleted  bool `dynamodbav:"is_deleted"`

	Production []stageAttr  `dynamodbav:"production,omitempty"`
	Reworks    []reworkAttr `dynamodbav:"reworks,omitempty"`

	Booking  contactAttr  `dynamodbav:"booking"`
	FollowUp followUpAttr `dynamodbav:"follow_up"`
	Pickup   contactAttr  `dynamodbav:"pickup"`

	EntryDate ddbTime `dynamodbav:"entry_date,omitempty"`
	CreatedAt ddbTime `dynamodbav:"created_at"`
	ClosedAt  ddbTime `dynamodbav:"closed_at,omitempty"`
}

type estimateAttr struct {
	EstimationNumber string         `dynamodbav:"estimation_number"`
	Estimator        string         `dynamodbav:"estimator,omitempty"`
	LaborItems       []lineItemAttr `dynamodbav:"labor_items"`
	PartItems        []lineItemAttr `dynamodbav:"part_items"`
	LaborSubtotal    ddbDecimal     `dynamodbav:"labor_subtotal"`
	PartsSubtotal    ddbDecimal     `dynamodbav:"parts_subtotal"`
	Discount         ddbDecimal     `dynamodbav:"discount"`
	GrandTotal       ddbDecimal     `dynamodbav:"grand_total"`
}

type lineItemAttr struct {
	Name     string     `dynamodbav:"name"`
	Price    ddbDecimal `dynamodbav:"price"`
	Quantity ddbDecimal `dynamodbav:"quantity"`
	Panels   ddbDecimal `dynamodbav:"panels"`
}

type costAttr struct {
	MaterialCost  ddbDecimal `dynamodbav:"material_cost"`
	PartsCost     ddbDecimal `dynamodbav:"parts_cost"`
	ExternalLabor ddbDecimal `dynamodbav:"external_labor"`
}

type stageAttr struct {
	Stage    string `dynamodbav:"stage"`
	Mechanic string `dynamodbav:"mechanic"`
}

type reworkAttr struct {
	Stage    string  `dynamodbav:"stage"`
	Actor    string  `dynamodbav:"actor,omitempty"`
	Note     string  `dynamodbav:"note,omitempty"`
	LoggedAt ddbTime `dynamodbav:"logged_at"`
}

type contactAttr struct {
	Contacted bool `dynamodbav:"contacted"`
	Success   bool `dynamodbav:"success"`
}

type followUpAttr struct {
	Contacted bool           `dynamodbav:"contacted"`
	CRCStatus string         `dynamodbav:"crc_status,omitempty"`
	CSI       map[string]int `dynamodbav:"csi,omitempty"`
}

// JobDynamoRepository persists jobs in DynamoDB and announces every write on
// the ledger feed.
//
// Table requirements:
//   - PK: id (string)
//
// WO and estimation numbers are write-once; Update enforces that with a
// condition expression so a stale client cannot overwrite them.
type JobDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	feed      interfaces.ILedgerFeed
	logger    *slog.Logger
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoAPI, tableName string, feed interfaces.ILedgerFeed, logger *slog.Logger) *JobDynamoRepository {
	if tableName == "" {
		tableName = defaultJobsTableName
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		feed:      feed,
		logger:    logger.With(slog.String("component", "job_repository")),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(job))
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
		return entities.Job{}, err
	}
	r.publish(ctx)
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
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

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	items, err := scanAll[jobItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(items))
	for _, it := range items {
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, id string, patch entities.JobPatch) (entities.Job, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	upd, err := buildJobUpdate(patch)
	if err != nil {
		return entities.Job{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 idKey(id),
		ConditionExpression:                 aws.String(upd.condition),
		UpdateExpression:                    aws.String(upd.expression),
		ExpressionAttributeValues:           upd.values,
		ExpressionAttributeNames:            upd.names,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Job{}, nil
			}
			return entities.Job{}, interfaces.ErrImmutableNumber
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	r.publish(ctx)
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return err
	}
	r.publish(ctx)
	return nil
}

// publish failures are logged only; the write already happened.
func (r *JobDynamoRepository) publish(ctx context.Context) {
	if r.feed == nil {
		return
	}
	if err := r.feed.Publish(ctx, entities.CollectionJobs); err != nil {
		r.logger.WarnContext(ctx, "ledger feed publish failed", slog.Any("err", err))
	}
}

type jobUpdate struct {
	expression string
	condition  string
	names      map[string]string
	values     map[string]types.AttributeValue
}

type updateBuilder struct {
	sets    []string
	removes []string
	conds   []string
	names   map[string]string
	values  map[string]types.AttributeValue
	err     error
}

func (b *updateBuilder) set(attr string, v any) {
	if b.err != nil {
		return
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("marshal %s: %w", attr, err)
		return
	}
	b.names["#"+attr] = attr
	b.values[":"+attr] = av
	b.sets = append(b.sets, fmt.Sprintf("#%s = :%s", attr, attr))
}

func (b *updateBuilder) remove(attr string) {
	b.names["#"+attr] = attr
	b.removes = append(b.removes, "#"+attr)
}

// buildJobUpdate turns a patch into one UpdateItem call. Only set fields are
// written; number fields carry a condition that lets them go from empty to a
// value but never to a different value.
func buildJobUpdate(p entities.JobPatch) (jobUpdate, error) {
	b := &updateBuilder{
		names:  map[string]string{"#id": "id"},
		values: map[string]types.AttributeValue{},
		conds:  []string{"attribute_exists(#id)"},
	}

	strs := []struct {
		attr string
		v    *string
	}{
		{"plate_number", p.PlateNumber},
		{"customer_name", p.CustomerName},
		{"customer_phone", p.CustomerPhone},
		{"vehicle_model", p.VehicleModel},
		{"vehicle_color", p.VehicleColor},
		{"insurance", p.Insurance},
		{"vehicle_status", p.VehicleStatus},
		{"work_status", p.WorkStatus},
	}
	for _, s := range strs {
		if s.v != nil {
			b.set(s.attr, *s.v)
		}
	}

	if p.ServiceAdvisor != nil {
		b.set("service_advisor", p.ServiceAdvisor.StoredValue())
	}
	if p.WONumber != nil {
		b.set("wo_number", *p.WONumber)
		b.values[":empty"] = &types.AttributeValueMemberS{Value: ""}
		b.conds = append(b.conds, "(attribute_not_exists(#wo_number) OR #wo_number = :empty OR #wo_number = :wo_number)")
	}
	if p.Estimate != nil {
		b.set("estimate", toEstimateAttr(*p.Estimate))
		b.names["#estimation_number"] = "estimation_number"
		b.values[":empty"] = &types.AttributeValueMemberS{Value: ""}
		b.values[":estimation_number"] = &types.AttributeValueMemberS{Value: p.Estimate.EstimationNumber}
		b.conds = append(b.conds, "(attribute_not_exists(#estimate.#estimation_number) OR #estimate.#estimation_number = :empty OR #estimate.#estimation_number = :estimation_number)")
	}
	if p.LaborPrice != nil {
		b.set("labor_price", dec(*p.LaborPrice))
	}
	if p.PartsPrice != nil {
		b.set("parts_price", dec(*p.PartsPrice))
	}
	if p.HasInvoice != nil {
		b.set("has_invoice", *p.HasInvoice)
	}
	if p.IsClosed != nil {
		b.set("is_closed", *p.IsClosed)
	}
	switch {
	case p.ClearClosedAt:
		b.remove("closed_at")
	case p.ClosedAt != nil:
		b.set("closed_at", tm(*p.ClosedAt))
	}
	if p.Production != nil {
		b.set("production", toStageAttrs(*p.Production))
	}
	if p.Reworks != nil {
		b.set("reworks", toReworkAttrs(*p.Reworks))
	}
	if p.Booking != nil {
		b.set("booking", contactAttr(*p.Booking))
	}
	if p.FollowUp != nil {
		b.set("follow_up", followUpAttr(*p.FollowUp))
	}
	if p.Pickup != nil {
		b.set("pickup", contactAttr(*p.Pickup))
	}
	if p.EntryDate != nil {
		b.set("entry_date", tm(*p.EntryDate))
	}
	if b.err != nil {
		return jobUpdate{}, b.err
	}

	var expr []string
	if len(b.sets) > 0 {
		expr = append(expr, "SET "+strings.Join(b.sets, ", "))
	}
	if len(b.removes) > 0 {
		expr = append(expr, "REMOVE "+strings.Join(b.removes, ", "))
	}
	upd := jobUpdate{
		expression: strings.Join(expr, " "),
		condition:  strings.Join(b.conds, " AND "),
		names:      b.names,
		values:     b.values,
	}
	if len(upd.values) == 0 {
		upd.values = nil
	}
	return upd, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:             j.ID,
		PlateNumber:    j.PlateNumber,
		CustomerName:   j.CustomerName,
		CustomerPhone:  j.CustomerPhone,
		VehicleModel:   j.VehicleModel,
		VehicleColor:   j.VehicleColor,
		Insurance:      j.Insurance,
		VehicleStatus:  j.VehicleStatus,
		WorkStatus:     j.WorkStatus,
		WONumber:       j.WONumber,
		ServiceAdvisor: j.ServiceAdvisor.StoredValue(),
		Estimate:       toEstimateAttr(j.Estimate),
		Cost: costAttr{
			MaterialCost:  dec(j.Cost.MaterialCost),
			PartsCost:     dec(j.Cost.PartsCost),
			ExternalLabor: dec(j.Cost.ExternalLabor),
		},
		LaborPrice: dec(j.LaborPrice),
		PartsPrice: dec(j.PartsPrice),
		HasInvoice: j.HasInvoice,
		IsClosed:   j.IsClosed,
		IsDeleted:  j.IsDeleted,
		Production: toStageAttrs(j.Production),
		Reworks:    toReworkAttrs(j.Reworks),
		Booking:    contactAttr(j.Booking),
		FollowUp:   followUpAttr(j.FollowUp),
		Pickup:     contactAttr(j.Pickup),
		EntryDate:  tm(j.EntryDate),
		CreatedAt:  tm(j.CreatedAt),
		ClosedAt:   tmPtr(j.ClosedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	production := make([]entities.StageAssignment, 0, len(it.Production))
	for _, s := range it.Production {
		production = append(production, entities.StageAssignment(s))
	}
	reworks := make([]entities.ReworkEvent, 0, len(it.Reworks))
	for _, rw := range it.Reworks {
		reworks = append(reworks, entities.ReworkEvent{
			Stage:    rw.Stage,
			Actor:    rw.Actor,
			Note:     rw.Note,
			LoggedAt: rw.LoggedAt.t,
		})
	}
	return entities.Job{
		ID:             it.ID,
		PlateNumber:    it.PlateNumber,
		CustomerName:   it.CustomerName,
		CustomerPhone:  it.CustomerPhone,
		VehicleModel:   it.VehicleModel,
		VehicleColor:   it.VehicleColor,
		Insurance:      it.Insurance,
		VehicleStatus:  it.VehicleStatus,
		WorkStatus:     it.WorkStatus,
		WONumber:       it.WONumber,
		ServiceAdvisor: entities.AssignedAdvisor(it.ServiceAdvisor),
		Estimate:       fromEstimateAttr(it.Estimate),
		Cost: entities.CostData{
			MaterialCost:  it.Cost.MaterialCost.v,
			PartsCost:     it.Cost.PartsCost.v,
			ExternalLabor: it.Cost.ExternalLabor.v,
		},
		LaborPrice: it.LaborPrice.v,
		PartsPrice: it.PartsPrice.v,
		HasInvoice: it.HasInvoice,
		IsClosed:   it.IsClosed,
		IsDeleted:  it.IsDeleted,
		Production: production,
		Reworks:    reworks,
		Booking:    entities.ContactOutcome(it.Booking),
		FollowUp:   entities.FollowUp(it.FollowUp),
		Pickup:     entities.ContactOutcome(it.Pickup),
		EntryDate:  it.EntryDate.t,
		CreatedAt:  it.CreatedAt.t,
		ClosedAt:   it.ClosedAt.ptr(),
	}
}

func toEstimateAttr(e entities.EstimateData) estimateAttr {
	return estimateAttr{
		EstimationNumber: e.EstimationNumber,
		Estimator:        e.Estimator,
		LaborItems:       toLineItemAttrs(e.LaborItems),
		PartItems:        toLineItemAttrs(e.PartItems),
		LaborSubtotal:    dec(e.LaborSubtotal),
		PartsSubtotal:    dec(e.PartsSubtotal),
		Discount:         dec(e.Discount),
		GrandTotal:       dec(e.GrandTotal),
	}
}

func fromEstimateAttr(a estimateAttr) entities.EstimateData {
	return entities.EstimateData{
		EstimationNumber: a.EstimationNumber,
		Estimator:        a.Estimator,
		LaborItems:       fromLineItemAttrs(a.LaborItems),
		PartItems:        fromLineItemAttrs(a.PartItems),
		LaborSubtotal:    a.LaborSubtotal.v,
		PartsSubtotal:    a.PartsSubtotal.v,
		Discount:         a.Discount.v,
		GrandTotal:       a.GrandTotal.v,
	}
}

func toLineItemAttrs(items []entities.LineItem) []lineItemAttr {
	out := make([]lineItemAttr, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemAttr{
			Name:     it.Name,
			Price:    dec(it.Price),
			Quantity: dec(it.Quantity),
			Panels:   dec(it.Panels),
		})
	}
	return out
}

func fromLineItemAttrs(items []lineItemAttr) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			Name:     it.Name,
			Price:    it.Price.v,
			Quantity: it.Quantity.v,
			Panels:   it.Panels.v,
		})
	}
	return out
}

func toStageAttrs(stages []entities.StageAssignment) []stageAttr {
	out := make([]stageAttr, 0, len(stages))
	for _, s := range stages {
		out = append(out, stageAttr(s))
	}
	return out
}

func toReworkAttrs(reworks []entities.ReworkEvent) []reworkAttr {
	out := make([]reworkAttr, 0, len(reworks))
	for _, rw := range reworks {
		out = append(out, reworkAttr{
			Stage:    rw.Stage,
			Actor:    rw.Actor,
			Note:     rw.Note,
			LoggedAt: tm(rw.LoggedAt),
		})
	}
	return out
}
