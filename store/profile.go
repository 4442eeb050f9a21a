package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodbridge-inc/foodbridge-api/schema"
)

var (
	ErrActorNotFound = fmt.Errorf("actor not found")
	ErrIdentityTaken = fmt.Errorf("this identity has been registered")
)

// Identity - resolves external identities to profiles and registers new ones
type Identity interface {
	FindActor(identity string) (*schema.Actor, error)
	RegisterIndividual(profile *schema.Individual) (*schema.Individual, error)
	RegisterNGO(profile *schema.NGO) (*schema.NGO, error)
	RegisterSocialWorker(profile *schema.SocialWorker) (*schema.SocialWorker, error)
}

// FindActor resolves an external identity string by searching the
// individual, ngo and social worker collections in that fixed priority
// order. The first match wins; an identity matching more than one
// collection is not treated as an error.
func (m *mongoDB) FindActor(identity string) (*schema.Actor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	query := bson.M{"identity": identity}

	var individual schema.Individual
	err := db.Collection(schema.IndividualCollection).FindOne(ctx, query).Decode(&individual)
	if err == nil {
		return &schema.Actor{
			Identity: individual.Identity,
			Name:     individual.Name,
			Role:     schema.RoleIndividual,
		}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	var ngo schema.NGO
	err = db.Collection(schema.NGOCollection).FindOne(ctx, query).Decode(&ngo)
	if err == nil {
		return &schema.Actor{
			Identity: ngo.Identity,
			Name:     ngo.Name,
			Role:     schema.RoleNGO,
		}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	var worker schema.SocialWorker
	err = db.Collection(schema.SocialWorkerCollection).FindOne(ctx, query).Decode(&worker)
	if err == nil {
		return &schema.Actor{
			Identity: worker.Identity,
			Name:     worker.Name,
			Role:     schema.RoleSocialWorker,
		}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	return nil, ErrActorNotFound
}

func (m *mongoDB) RegisterIndividual(profile *schema.Individual) (*schema.Individual, error) {
	profile.CreatedAt = time.Now().UTC()
	id, err := m.insertProfile(schema.IndividualCollection, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = id
	return profile, nil
}

func (m *mongoDB) RegisterNGO(profile *schema.NGO) (*schema.NGO, error) {
	profile.CreatedAt = time.Now().UTC()
	id, err := m.insertProfile(schema.NGOCollection, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = id
	return profile, nil
}

func (m *mongoDB) RegisterSocialWorker(profile *schema.SocialWorker) (*schema.SocialWorker, error) {
	profile.CreatedAt = time.Now().UTC()
	id, err := m.insertProfile(schema.SocialWorkerCollection, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = id
	return profile, nil
}

func (m *mongoDB) insertProfile(collection string, profile interface{}) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.client.Database(m.database).Collection(collection).InsertOne(ctx, profile)
	if err != nil {
		if we, hasErr := err.(mongo.WriteException); hasErr {
			if 1 == len(we.WriteErrors) && DuplicateKeyCode == we.WriteErrors[0].Code {
				return primitive.NilObjectID, ErrIdentityTaken
			}
		}
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}
