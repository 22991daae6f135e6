package models

type DeveloperContact struct {
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

type Developer struct {
	ID                string           `bson:"_id" json:"id"`
	Name              string           `bson:"name" json:"name"`
	Description       string           `bson:"description" json:"description"`
	Contact           DeveloperContact `bson:"contact" json:"contact"`
	ActiveProjects    int              `bson:"activeProjects" json:"activeProjects"`
	CompletedProjects int              `bson:"completedProjects" json:"completedProjects"`
	TotalProjects     int              `bson:"totalProjects" json:"totalProjects"`
	Highlights        []string         `bson:"highlights" json:"highlights"`
}
