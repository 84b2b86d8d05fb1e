// scripts/seed.go
package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/iamaakashks/school-management-system/config"
	"github.com/iamaakashks/school-management-system/database"
	"github.com/iamaakashks/school-management-system/models"
)

func mustHash(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	return string(h)
}

func upsertUser(email, name, password, role string) models.User {
	var u models.User
	err := database.DB.Where("email = ?", email).First(&u).Error
	if err == nil {
		return u
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query users: %v", err)
	}
	u = models.User{Email: email, Name: name, Password: mustHash(password), Role: role}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to create user %s: %v", email, err)
	}
	return u
}

func upsertTeacher(u models.User, phone, address string) models.Teacher {
	var t models.Teacher
	err := database.DB.Where("user_id = ?", u.ID).First(&t).Error
	if err == nil {
		return t
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query teachers: %v", err)
	}
	t = models.Teacher{UserID: u.ID, Phone: phone, Address: address}
	if err := database.DB.Create(&t).Error; err != nil {
		log.Fatalf("failed to create teacher for %s: %v", u.Email, err)
	}
	return t
}

func upsertClass(name, description string, teacherID *uint) models.Class {
	var cl models.Class
	err := database.DB.Where("name = ?", name).First(&cl).Error
	if err == nil {
		return cl
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query classes: %v", err)
	}
	cl = models.Class{Name: name, Description: description, TeacherID: teacherID}
	if err := database.DB.Create(&cl).Error; err != nil {
		log.Fatalf("failed to create class %s: %v", name, err)
	}
	return cl
}

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	log.Println("seeding database...")

	upsertUser("admin@school.com", "System Administrator", "admin123", models.RoleAdmin)

	t1 := upsertTeacher(
		upsertUser("teacher@school.com", "John Teacher", "teacher123", models.RoleTeacher),
		"+1234567890", "123 Teacher Street")
	t2 := upsertTeacher(
		upsertUser("jane.teacher@school.com", "Jane Smith", "teacher123", models.RoleTeacher),
		"+1234567891", "456 Teacher Avenue")

	g1 := upsertClass("Grade 1", "First grade students", &t1.ID)
	g2 := upsertClass("Grade 2", "Second grade students", &t2.ID)
	g3 := upsertClass("Grade 3", "Third grade students", nil)

	for _, cl := range []models.Class{g1, g2, g3} {
		for _, name := range []string{"A", "B"} {
			var s models.Section
			if err := database.DB.Where("class_id = ? AND name = ?", cl.ID, name).
				First(&s).Error; err == gorm.ErrRecordNotFound {
				if err := database.DB.Create(&models.Section{Name: name, ClassID: cl.ID}).Error; err != nil {
					log.Fatalf("failed to create section %s/%s: %v", cl.Name, name, err)
				}
			}
		}
	}

	subjects := []models.Subject{
		{Name: "Mathematics", Code: "MATH", TeacherID: &t1.ID, ClassID: &g1.ID},
		{Name: "English", Code: "ENG", TeacherID: &t2.ID, ClassID: &g1.ID},
		{Name: "Science", Code: "SCI", TeacherID: &t1.ID, ClassID: &g2.ID},
		{Name: "History", Code: "HIST", TeacherID: &t2.ID, ClassID: &g2.ID},
	}
	for _, sub := range subjects {
		var existing models.Subject
		if err := database.DB.Where("code = ?", sub.Code).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := database.DB.Create(&sub).Error; err != nil {
				log.Fatalf("failed to create subject %s: %v", sub.Code, err)
			}
		}
	}

	students := []models.Student{
		{FirstName: "Alice", LastName: "Johnson", AdmissionNo: "ADM20240001", ClassID: &g1.ID, IsActive: true},
		{FirstName: "Bob", LastName: "Williams", AdmissionNo: "ADM20240002", ClassID: &g1.ID, IsActive: true},
		{FirstName: "Carol", LastName: "Davis", AdmissionNo: "ADM20240003", ClassID: &g2.ID, IsActive: true},
	}
	for _, st := range students {
		var existing models.Student
		if err := database.DB.Where("admission_no = ?", st.AdmissionNo).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := database.DB.Create(&st).Error; err != nil {
				log.Fatalf("failed to create student %s: %v", st.AdmissionNo, err)
			}
		}
	}

	fmt.Println("seed complete")
	fmt.Println("  admin:   admin@school.com / admin123")
	fmt.Println("  teacher: teacher@school.com / teacher123")
}
