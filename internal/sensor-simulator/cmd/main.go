package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	sensorSimulator "tomatodiag/internal/sensor-simulator"
	"tomatodiag/pkg/mqttclient"
)

func main() {
	sensorID := flag.String("sensor-id", "sensor1", "unique sensor identifier")
	fieldID := flag.String("field-id", "field1", "unique field identifier")
	clientID := flag.String("client-id", "soilProbe1", "MQTT client ID")
	interval := flag.Duration("interval", 10*time.Second, "publish interval")
	host := flag.String("mqtt-host", "localhost", "MQTT broker host")
	port := flag.Int("mqtt-port", 1883, "MQTT broker port")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random walk seed")
	flag.Parse()

	cfg := &mqttclient.Config{
		Host:     *host,
		Port:     *port,
		User:     "guest",
		Password: "guest",
		ClientID: *clientID,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mqttclient.NewConn(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	publisher := mqttclient.NewPublisher(client, "sensor/soil")
	generator := sensorSimulator.NewDataGenerator(*seed)

	sim := sensorSimulator.NewSensorSimulator(publisher, generator, *fieldID, *sensorID)
	sim.Start(ctx, *interval)
}
