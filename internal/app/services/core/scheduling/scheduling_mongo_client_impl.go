package scheduling

import (
	"context"
	"errors"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	_ contracts.SchedulingDataClient   = (*MongoDataClient)(nil)
	_ contracts.PsychologistRepository = (*MongoDataClient)(nil)
)

// MongoDataClient serves the scheduling data from MongoDB. The unique
// (psychologistId, email) index on patients and the pending-only status
// update give the accept flow server side guards.
type MongoDataClient struct {
	Patients        *mongo.Collection
	SessionRequests *mongo.Collection
	Appointments    *mongo.Collection
	Psychologists   *mongo.Collection
	Log             *zap.Logger
	now             func() time.Time
}

func NewMongoDataClient(db *mongo.Database, logger *zap.Logger) *MongoDataClient {
	return &MongoDataClient{
		Patients:        db.Collection(constvars.MongoCollectionPatients),
		SessionRequests: db.Collection(constvars.MongoCollectionSessionRequests),
		Appointments:    db.Collection(constvars.MongoCollectionAppointments),
		Psychologists:   db.Collection(constvars.MongoCollectionPsychologists),
		Log:             logger,
		now:             time.Now,
	}
}

func (c *MongoDataClient) EnsureIndexes(ctx context.Context) error {
	_, err := c.Patients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "psychologistId", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_psychologist_email"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}

	_, err = c.SessionRequests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "psychologistId", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}

	_, err = c.Appointments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "psychologistId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}

	_, err = c.Psychologists.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (c *MongoDataClient) GetRequests(ctx context.Context, psychologistID string) ([]models.SessionRequest, error) {
	var result []models.SessionRequest
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if err := findAll(ctx, c.SessionRequests, byPsychologist(psychologistID), opts, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *MongoDataClient) GetPatients(ctx context.Context, psychologistID string) ([]models.Patient, error) {
	var result []models.Patient
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := findAll(ctx, c.Patients, byPsychologist(psychologistID), opts, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *MongoDataClient) GetAppointments(ctx context.Context, psychologistID string) ([]models.Appointment, error) {
	var result []models.Appointment
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	if err := findAll(ctx, c.Appointments, byPsychologist(psychologistID), opts, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *MongoDataClient) CreatePatient(ctx context.Context, input models.CreatePatientInput) (*models.Patient, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := models.Patient{
		ID:             utils.GenerateID(),
		PsychologistID: input.PsychologistID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		BirthDate:      input.BirthDate,
		Age:            input.Age,
		Status:         input.Status,
		CreatedAt:      c.now().UTC(),
	}

	if _, err := c.Patients.InsertOne(ctx, patient); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrMongoDBDuplicateKey(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return &patient, nil
}

// UpdateRequestStatus only transitions requests that are still pending, so two
// instances cannot resolve the same request twice.
func (c *MongoDataClient) UpdateRequestStatus(ctx context.Context, requestID, status, note string) error {
	filter := bson.M{"_id": requestID, "status": constvars.RequestStatusPending}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"note":      note,
		"updatedAt": c.now().UTC(),
	}}

	result, err := c.SessionRequests.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMongoDBNoDocumentMatched(nil)
	}
	return nil
}

// FindByEmail returns (nil, nil) when no account matches.
func (c *MongoDataClient) FindByEmail(ctx context.Context, email string) (*models.Psychologist, error) {
	var psychologist models.Psychologist
	err := c.Psychologists.FindOne(ctx, bson.M{"email": email}).Decode(&psychologist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &psychologist, nil
}

func byPsychologist(psychologistID string) bson.M {
	if psychologistID == "" {
		return bson.M{}
	}
	return bson.M{"psychologistId": psychologistID}
}

func findAll(ctx context.Context, collection *mongo.Collection, filter bson.M, opts *options.FindOptions, result interface{}) error {
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, result); err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}
	return nil
}
