package service

import (
	"time"

	"github.com/google/uuid"

	"huffzip_go/internal/model"
	"huffzip_go/internal/repo"
	"huffzip_go/pkg/huffman"
	"huffzip_go/pkg/logger"
)

type CodecService struct {
	repo   repo.JobRepo
	logger logger.Logger
}

func NewCodecService(r repo.JobRepo, l logger.Logger) *CodecService {
	return &CodecService{repo: r, logger: l}
}

// Compress encodes data and records the call as a job.
func (s *CodecService) Compress(data []byte) ([]byte, *model.Job, error) {
	out := huffman.Compress(data)
	job, err := s.record(model.DirectionCompress, len(data), len(out))
	if err != nil {
		return nil, nil, err
	}
	return out, job, nil
}

// Decompress decodes data and records the call as a job. Malformed
// input surfaces as huffman.ErrFormat and is not recorded.
func (s *CodecService) Decompress(data []byte) ([]byte, *model.Job, error) {
	out, err := huffman.Decompress(data)
	if err != nil {
		s.logger.Errorf("decompress failed: %v", err)
		return nil, nil, err
	}
	job, err := s.record(model.DirectionDecompress, len(data), len(out))
	if err != nil {
		return nil, nil, err
	}
	return out, job, nil
}

func (s *CodecService) GetJob(id string) (*model.Job, error) {
	return s.repo.FindByID(id)
}

func (s *CodecService) ListJobs() ([]*model.Job, error) {
	return s.repo.List()
}

func (s *CodecService) record(direction string, inSize, outSize int) (*model.Job, error) {
	ratio := 0.0
	if inSize > 0 {
		ratio = float64(outSize) / float64(inSize)
	}
	j := &model.Job{
		ID:         uuid.NewString(),
		Direction:  direction,
		InputSize:  inSize,
		OutputSize: outSize,
		Ratio:      ratio,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Save(j); err != nil {
		return nil, err
	}
	s.logger.Infof("%s job %s: %d -> %d bytes", direction, j.ID, inSize, outSize)
	return j, nil
}
