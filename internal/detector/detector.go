package detector

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"
	"sync"

	"github.com/Shamsiaa/ForestEye-App/internal/models"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

const (
	// Network input resolution the model was exported with.
	inputSize = 640

	// IoU threshold for non-maximum suppression.
	nmsThreshold = 0.45
)

// ErrInvalidImage is returned when the buffer handed to Detect is absent or malformed.
var ErrInvalidImage = errors.New("invalid image provided for detection")

// Only these labels qualify as detections; everything else the model emits is discarded.
var allowedClasses = map[string]struct{}{
	"fire":  {},
	"smoke": {},
}

// Detector runs a YOLO ONNX network in-process through the OpenCV DNN module.
type Detector struct {
	mu            sync.Mutex // gocv.Net is not safe for concurrent Forward calls
	net           gocv.Net
	classNames    []string
	confThreshold float32
	logger        *logrus.Logger
}

// New loads the ONNX model from modelPath. classNames must be in the index
// order the model was trained with.
func New(modelPath string, classNames []string, confidence float64, logger *logrus.Logger) (*Detector, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load detection model from %s", modelPath)
	}

	logger.WithFields(logrus.Fields{
		"model":      modelPath,
		"classes":    classNames,
		"confidence": confidence,
	}).Info("Detection model loaded")

	return &Detector{
		net:           net,
		classNames:    classNames,
		confThreshold: float32(confidence),
		logger:        logger,
	}, nil
}

// Detect runs the model on a decoded image and normalizes the output: raw
// detections are filtered to the fire/smoke allow-list and the status is
// "<class> detected" for the last qualifying detection, or "nothing detected".
func (d *Detector) Detect(img gocv.Mat) (*models.DetectionResult, error) {
	if img.Empty() {
		return nil, ErrInvalidImage
	}

	boxes, scores, classIDs, err := d.forward(img)
	if err != nil {
		return nil, err
	}

	kept := gocv.NMSBoxes(boxes, scores, d.confThreshold, nmsThreshold)

	result := &models.DetectionResult{
		Status:     models.NothingDetected,
		Detections: []models.Detection{},
	}
	for _, idx := range kept {
		classID := classIDs[idx]
		if classID < 0 || classID >= len(d.classNames) {
			continue
		}
		className := d.classNames[classID]
		if _, ok := allowedClasses[strings.ToLower(className)]; !ok {
			continue
		}

		box := boxes[idx]
		result.Detections = append(result.Detections, models.Detection{
			Class:      className,
			Confidence: math.Round(float64(scores[idx])*100) / 100,
			BBox: [4]float64{
				float64(box.Min.X),
				float64(box.Min.Y),
				float64(box.Max.X),
				float64(box.Max.Y),
			},
		})
		result.Status = fmt.Sprintf("%s detected", className)
	}

	d.logger.WithFields(logrus.Fields{
		"status":     result.Status,
		"detections": len(result.Detections),
	}).Debug("Detection complete")

	return result, nil
}

// forward runs one inference pass and decodes the YOLO output tensor
// (1 x 4+classes x anchors) into candidate boxes in source image coordinates.
func (d *Detector) forward(img gocv.Mat) ([]image.Rectangle, []float32, []int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	blob := gocv.BlobFromImage(img, 1.0/255.0, image.Pt(inputSize, inputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	output := d.net.Forward("")
	defer output.Close()

	dims := output.Size()
	if len(dims) != 3 || dims[1] < 5 {
		return nil, nil, nil, fmt.Errorf("unexpected model output shape %v", dims)
	}
	anchors := dims[2]
	classes := dims[1] - 4

	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read model output: %w", err)
	}

	xFactor := float32(img.Cols()) / float32(inputSize)
	yFactor := float32(img.Rows()) / float32(inputSize)

	var (
		boxes    []image.Rectangle
		scores   []float32
		classIDs []int
	)
	for i := 0; i < anchors; i++ {
		bestScore := float32(0)
		bestClass := -1
		for c := 0; c < classes; c++ {
			if score := data[(4+c)*anchors+i]; score > bestScore {
				bestScore = score
				bestClass = c
			}
		}
		if bestScore < d.confThreshold {
			continue
		}

		cx := data[0*anchors+i] * xFactor
		cy := data[1*anchors+i] * yFactor
		w := data[2*anchors+i] * xFactor
		h := data[3*anchors+i] * yFactor

		boxes = append(boxes, image.Rect(
			int(cx-w/2), int(cy-h/2),
			int(cx+w/2), int(cy+h/2),
		))
		scores = append(scores, bestScore)
		classIDs = append(classIDs, bestClass)
	}

	return boxes, scores, classIDs, nil
}

// Close releases the underlying network.
func (d *Detector) Close() error {
	return d.net.Close()
}
