package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"huffzip_go/internal/model"
	"huffzip_go/internal/repo"
	"huffzip_go/pkg/huffman"
	"huffzip_go/pkg/logger"
)

func newTestService() *CodecService {
	return NewCodecService(repo.NewJobRepoInMemory(), logger.New())
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	svc := newTestService()
	input := []byte("huffman coding is simple")

	encoded, compressJob, err := svc.Compress(input)
	require.NoError(t, err)
	require.NotNil(t, compressJob)
	require.Equal(t, model.DirectionCompress, compressJob.Direction)
	require.Equal(t, len(input), compressJob.InputSize)
	require.Equal(t, len(encoded), compressJob.OutputSize)

	decoded, decompressJob, err := svc.Decompress(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
	require.Equal(t, model.DirectionDecompress, decompressJob.Direction)
}

func TestJobsRecorded(t *testing.T) {
	svc := newTestService()
	_, job, err := svc.Compress([]byte("abc"))
	require.NoError(t, err)

	found, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	require.Equal(t, job.ID, found.ID)

	jobs, err := svc.ListJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
}

func TestGetJobNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.GetJob("nope")
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDecompressBadInputNotRecorded(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Decompress([]byte{0xde, 0xad})
	require.ErrorIs(t, err, huffman.ErrFormat)

	jobs, err := svc.ListJobs()
	require.NoError(t, err)
	require.Empty(t, jobs)
}

func TestCompressRatio(t *testing.T) {
	svc := newTestService()
	input := make([]byte, 4096) // all zeroes, highly compressible
	encoded, job, err := svc.Compress(input)
	require.NoError(t, err)
	require.InDelta(t, float64(len(encoded))/float64(len(input)), job.Ratio, 1e-9)
	require.Less(t, job.Ratio, 1.0)
}
