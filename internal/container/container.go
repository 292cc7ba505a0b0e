package container

import (
	"context"
	"log"
	"os"

	"github.com/prepwise/upsc-prep-lambda/internal/aifeedback"
	"github.com/prepwise/upsc-prep-lambda/internal/auth"
	"github.com/prepwise/upsc-prep-lambda/internal/config"
	"github.com/prepwise/upsc-prep-lambda/internal/question"
	"github.com/prepwise/upsc-prep-lambda/internal/questionset"
	"github.com/prepwise/upsc-prep-lambda/internal/testsession"
	"github.com/prepwise/upsc-prep-lambda/internal/user"
	"github.com/prepwise/upsc-prep-lambda/internal/voicememo"
)

type Container struct {
	UserContainer        *user.UserContainer
	QuestionContainer    *question.QuestionContainer
	QuestionSetContainer *questionset.QuestionSetContainer
	SessionContainer     *testsession.SessionContainer
	AIFeedbackContainer  *aifeedback.AIFeedbackContainer
	VoiceMemoContainer   *voicememo.VoiceMemoContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	questionContainer := question.NewQuestionContainer(config.DB)
	questionSetContainer := questionset.NewQuestionSetContainer(config.DB, questionContainer.Repo)
	sessionContainer := testsession.NewSessionContainer(config.DB, questionSetContainer.Service)
	aiFeedbackContainer := aifeedback.NewAIFeedbackContainer()
	voiceMemoContainer := voicememo.NewVoiceMemoContainer(
		config.DB,
		questionContainer.Repo,
		aiFeedbackContainer.Service,
	)

	sessionContainer.Manager.Start(context.Background())

	return &Container{
		UserContainer:        userContainer,
		QuestionContainer:    questionContainer,
		QuestionSetContainer: questionSetContainer,
		SessionContainer:     sessionContainer,
		AIFeedbackContainer:  aiFeedbackContainer,
		VoiceMemoContainer:   voiceMemoContainer,
	}
}
