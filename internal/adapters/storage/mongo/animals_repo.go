package mongo

import (
	"context"
	"errors"

	"animals-api/internal/domain/animals"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const animalsCollection = "animals"

// animalDoc es el documento BSON persistido. El mapeo _id <-> ID hex
// vive únicamente en este adapter; el dominio solo ve strings.
type animalDoc struct {
	ID      primitive.ObjectID `bson:"_id"`
	Name    string             `bson:"name"`
	Species string             `bson:"species"`
	Age     int                `bson:"age"`
}

type AnimalRepo struct {
	coll *mongodrv.Collection
}

func NewAnimalRepo(db *mongodrv.Database) *AnimalRepo {
	return &AnimalRepo{coll: db.Collection(animalsCollection)}
}

// parseID traduce el id del path a ObjectID antes de tocar la red.
// Un id que no cumple la sintaxis del store es error del cliente,
// no un not-found.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, animals.ErrInvalidID
	}
	return oid, nil
}

func (r *AnimalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	doc := animalDoc{
		ID:      primitive.NewObjectID(),
		Name:    a.Name,
		Species: a.Species,
		Age:     a.Age,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return animals.Animal{}, err
	}
	return doc.toAnimal(), nil
}

func (r *AnimalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]animalDoc, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]animals.Animal, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toAnimal())
	}
	return out, nil
}

func (r *AnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	oid, err := parseID(id)
	if err != nil {
		return animals.Animal{}, err
	}

	var doc animalDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return doc.toAnimal(), nil
}

// Replace reescribe el documento completo y devuelve el estado posterior
// (ReturnDocument=After). Dos replaces concurrentes sobre el mismo id los
// serializa el store: gana la última escritura.
func (r *AnimalRepo) Replace(ctx context.Context, id string, a animals.Animal) (animals.Animal, error) {
	oid, err := parseID(id)
	if err != nil {
		return animals.Animal{}, err
	}

	replacement := bson.M{"name": a.Name, "species": a.Species, "age": a.Age}
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var doc animalDoc
	if err := r.coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, replacement, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return doc.toAnimal(), nil
}

func (r *AnimalRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return animals.ErrNotFound
		}
		return err
	}
	return nil
}

func (d animalDoc) toAnimal() animals.Animal {
	return animals.Animal{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Species: d.Species,
		Age:     d.Age,
	}
}
