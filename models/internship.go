// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Internship is a position published by a company.
type Internship struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Remote      bool      `json:"remote"`
	Skills      []string  `json:"skills,omitempty"`
	Deadline    time.Time `json:"deadline"`
	PostedAt    time.Time `json:"postedAt"`
}

// ApplicationStatus is the lifecycle state of an application as reported by
// the remote source.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Application is a student's application to an internship.
type Application struct {
	ID           string            `json:"id"`
	InternshipID string            `json:"internshipId"`
	StudentID    string            `json:"studentId"`
	Status       ApplicationStatus `json:"status"`
	CoverLetter  string            `json:"coverLetter,omitempty"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ApplicationDraft is the in-progress application form persisted locally
// while the student types.
type ApplicationDraft struct {
	InternshipID string   `json:"internshipId"`
	CoverLetter  string   `json:"coverLetter"`
	ResumeURL    string   `json:"resumeUrl"`
	Availability string   `json:"availability"`
	Skills       []string `json:"skills"`
}
