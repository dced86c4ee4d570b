package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/repository"
)

type quizService struct {
	repos Repos
	uow   db.UnitOfWork
	opts  options
}

func NewQuizService(repos Repos, uow db.UnitOfWork, opts ...Option) QuizService {
	return &quizService{repos: repos, uow: uow, opts: buildOptions(opts)}
}

// Start resets progress to the first question.
func (s *quizService) Start(ctx context.Context) (status *contract.QuizStatus, err error) {
	defer observe(ctx, s.opts.observer, "quiz-start", nil, &err)()

	if err = s.repos.Tracker.SaveQuiz(ctx, domain.QuizState{}); err != nil {
		return nil, fmt.Errorf("starting quiz: %w", err)
	}
	st := contract.NewQuizStatus(domain.QuizState{})
	return &st, nil
}

// Answer scores the current question. Finishing the quiz evaluates
// achievements so the mental badge can be earned.
func (s *quizService) Answer(ctx context.Context, answer bool) (resp *contract.QuizAnswerResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.opts.observer, "quiz-answer", fields, &err)()

	now := s.opts.now().UTC()
	resp = &contract.QuizAnswerResponse{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tracker := repository.NewSQLiteTrackerRepo(tx)
		state, err := tracker.Get(ctx)
		if err != nil {
			return err
		}
		q := state.Quiz
		cur, ok := q.Current()
		if !ok {
			return contract.NewError(contract.ErrQuizComplete,
				"quiz already finished with %d/%d; start again to retake it", q.Score, len(domain.QuizBank))
		}
		resp.Expected = cur.Answer
		resp.Correct = q.Answer(answer)
		if err := tracker.SaveQuiz(ctx, q); err != nil {
			return err
		}
		resp.Status = contract.NewQuizStatus(q)
		if !q.Done() {
			return nil
		}
		_, _, newly, err := refreshAchievements(ctx, tx, now)
		if err != nil {
			return err
		}
		resp.NewBadges = newly
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("answering quiz: %w", err)
	}
	fields["index"] = resp.Status.Index
	fields["correct"] = resp.Correct
	return resp, nil
}

func (s *quizService) Status(ctx context.Context) (*contract.QuizStatus, error) {
	state, err := s.repos.Tracker.Get(ctx)
	if err != nil {
		return nil, err
	}
	status := contract.NewQuizStatus(state.Quiz)
	return &status, nil
}
