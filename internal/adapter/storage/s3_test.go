package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggarsaudev/career-hub/internal/common"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
	lastPut *s3.PutObjectInput
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string][]byte{}} }

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = b
	f.lastPut = in
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func TestS3Store(t *testing.T) {
	runStoreContract(t, func(t *testing.T) store { return newS3Store(newFakeS3(), "cv-bucket", "cv/") })
}

func TestS3Store_ObjectLayout(t *testing.T) {
	fake := newFakeS3()
	s := newS3Store(fake, "cv-bucket", "cv/")

	ack, err := s.Publish(context.Background(), []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "cv-bucket/cv/"+common.PublishedFileName, ack.Key)
	assert.Equal(t, "application/pdf", aws.ToString(fake.lastPut.ContentType))
	assert.Equal(t, int64(8), aws.ToInt64(fake.lastPut.ContentLength))
}

func TestS3Store_PutErrorIsPublishFailure(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("connection reset")

	_, err := newS3Store(fake, "b", "").Publish(context.Background(), []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, common.ErrPublishFailure)
}

func TestNewS3Store_WiresEndpointAndPathStyle(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	var gotRegion string
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		gotRegion = lo.Region
		return aws.Config{Region: lo.Region}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		for _, fn := range optFns {
			fn(&opts)
		}
		return newFakeS3()
	}

	s, err := NewS3Store(context.Background(), S3Config{
		Bucket: "cv", Region: "eu-west-1", Endpoint: "http://minio:9000",
		AccessKey: "k", SecretKey: "s", UsePathStyle: true,
	})
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, "eu-west-1", gotRegion)
	assert.Equal(t, "http://minio:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Store_RequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{})
	assert.Error(t, err)
}
