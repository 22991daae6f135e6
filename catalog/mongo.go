package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

// MongoStore is the persistent rendition of the Store contract. Every
// read hydrates a fresh snapshot so a catalog that grows between calls is
// always seen in full; writes are insert-only.
type MongoStore struct {
	properties *mongo.Collection
	projects   *mongo.Collection
	developers *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		properties: db.Collection("properties"),
		projects:   db.Collection("projects"),
		developers: db.Collection("developers"),
	}
}

// EnsureSeeded loads the bundled dataset into empty collections so a
// fresh deployment starts with the same catalog as the memory store.
func (s *MongoStore) EnsureSeeded(ctx context.Context) error {
	count, err := s.developers.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("catalog: failed to inspect developers collection: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, d := range SeedDevelopers() {
		if _, err := s.developers.InsertOne(ctx, d); err != nil {
			return fmt.Errorf("catalog: failed to seed developers: %w", err)
		}
	}
	for _, project := range SeedProjects() {
		if _, err := s.projects.InsertOne(ctx, project); err != nil {
			return fmt.Errorf("catalog: failed to seed projects: %w", err)
		}
	}
	for _, property := range SeedProperties() {
		if _, err := s.properties.InsertOne(ctx, property); err != nil {
			return fmt.Errorf("catalog: failed to seed properties: %w", err)
		}
	}
	return nil
}

func (s *MongoStore) GetAllProperties(ctx context.Context) ([]models.Property, error) {
	cursor, err := s.properties.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			continue
		}
		properties = append(properties, p)
	}
	return properties, cursor.Err()
}

func (s *MongoStore) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.projects.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	for cursor.Next(ctx) {
		var project models.Project
		if err := cursor.Decode(&project); err != nil {
			continue
		}
		projects = append(projects, project)
	}
	return projects, cursor.Err()
}

func (s *MongoStore) GetAllDevelopers(ctx context.Context) ([]models.Developer, error) {
	cursor, err := s.developers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to fetch developers: %w", err)
	}
	defer cursor.Close(ctx)

	developers := []models.Developer{}
	for cursor.Next(ctx) {
		var d models.Developer
		if err := cursor.Decode(&d); err != nil {
			continue
		}
		developers = append(developers, d)
	}
	return developers, cursor.Err()
}

func (s *MongoStore) GetProperty(ctx context.Context, id string) (models.Property, error) {
	var p models.Property
	err := s.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Property{}, ErrNotFound
	}
	if err != nil {
		return models.Property{}, fmt.Errorf("catalog: failed to fetch property: %w", err)
	}
	return p, nil
}

func (s *MongoStore) GetProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project
	err := s.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("catalog: failed to fetch project: %w", err)
	}
	return project, nil
}

func (s *MongoStore) GetDeveloper(ctx context.Context, id string) (models.Developer, error) {
	var d models.Developer
	err := s.developers.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Developer{}, ErrNotFound
	}
	if err != nil {
		return models.Developer{}, fmt.Errorf("catalog: failed to fetch developer: %w", err)
	}
	return d, nil
}

func (s *MongoStore) AddDeveloper(ctx context.Context, developer models.Developer) error {
	if developer.ID == "" || developer.Name == "" {
		return fmt.Errorf("catalog: developer id and name are required")
	}
	count, err := s.developers.CountDocuments(ctx, bson.M{"_id": developer.ID})
	if err != nil {
		return fmt.Errorf("catalog: failed to check developer existence: %w", err)
	}
	if count > 0 {
		return ErrDuplicateID
	}
	_, err = s.developers.InsertOne(ctx, developer)
	return err
}

func (s *MongoStore) AddProject(ctx context.Context, project models.Project) error {
	if err := validateProject(project); err != nil {
		return err
	}
	count, err := s.projects.CountDocuments(ctx, bson.M{"_id": project.ID})
	if err != nil {
		return fmt.Errorf("catalog: failed to check project existence: %w", err)
	}
	if count > 0 {
		return ErrDuplicateID
	}
	count, err = s.developers.CountDocuments(ctx, bson.M{"_id": project.DeveloperID})
	if err != nil {
		return fmt.Errorf("catalog: failed to check developer existence: %w", err)
	}
	if count == 0 {
		return ErrUnknownDeveloper
	}
	_, err = s.projects.InsertOne(ctx, project)
	return err
}

func (s *MongoStore) AddProperty(ctx context.Context, property models.Property) error {
	if err := validateProperty(property); err != nil {
		return err
	}
	count, err := s.properties.CountDocuments(ctx, bson.M{"_id": property.ID})
	if err != nil {
		return fmt.Errorf("catalog: failed to check property existence: %w", err)
	}
	if count > 0 {
		return ErrDuplicateID
	}
	count, err = s.projects.CountDocuments(ctx, bson.M{"_id": property.ProjectID})
	if err != nil {
		return fmt.Errorf("catalog: failed to check project existence: %w", err)
	}
	if count == 0 {
		return ErrUnknownProject
	}
	_, err = s.properties.InsertOne(ctx, property)
	return err
}
