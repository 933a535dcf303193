package main

const htmlClientPage = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Pixel Art Before/After Maker</title>
   <style>
    body { font-family: sans-serif; display: flex; flex-direction: column; align-items: center; margin-top: 20px; margin-bottom: 20px;}
    #controls {
        border: 1px solid #ccc;
        padding: 15px;
        width: 80vw;
        background-color: #e9e9e9;
        display: flex;
        flex-direction: column;
        gap: 10px;
    }
    #comparison {
        display: flex;
        gap: 20px;
        width: 80vw;
        margin-top: 20px;
    }
    .column {
        flex: 1;
        border: 1px solid #ccc;
        background-color: #f0f0f0;
        padding: 10px;
    }
    .column h3 { margin-top: 0; min-height: 2.5em; }
    .column img {
        width: 100%;
        object-fit: contain;
        image-rendering: pixelated;
        display: block;
    }
    button { padding: 10px 20px; }
    #status { margin-top: 10px; font-style: italic; }
    #info { width: 80vw; margin-top: 20px; }
    #info p { margin: 5px 0; }
</style>
</head>
<body>
    <h1>Pixel Art Before/After Maker</h1>
    <p>Compare your image side by side with its pixel art version. Pick a color style too!</p>

    <div id="controls">
        <label>Choose an image: <input type="file" id="imageInput"></label>
        <label>Color style: <select id="styleSelect"></select></label>
        <label>Pixel size (bigger is blockier): <input type="range" id="pixelSize"> <span id="pixelSizeValue"></span></label>
    </div>
    <div id="status"></div>

    <div id="comparison" hidden>
        <div class="column">
            <h3>Original image</h3>
            <img id="originalImage" alt="Original image" />
        </div>
        <div class="column">
            <h3 id="styledHeading">Pixel art</h3>
            <img id="styledImage" alt="Pixel art" />
        </div>
    </div>

    <button id="downloadButton" hidden>Download</button>

    <details id="info" hidden>
        <summary>Image info</summary>
        <div id="infoLines"></div>
    </details>

    <script>
        const imageInput = document.getElementById('imageInput');
        const styleSelect = document.getElementById('styleSelect');
        const pixelSize = document.getElementById('pixelSize');
        const pixelSizeValue = document.getElementById('pixelSizeValue');
        const statusElement = document.getElementById('status');
        const downloadButton = document.getElementById('downloadButton');
        let fileName = 'pixel_art.png';

        function buildForm() {
            const form = new FormData();
            form.append('image', imageInput.files[0]);
            form.append('style', styleSelect.value);
            form.append('pixelSize', pixelSize.value);
            return form;
        }

        function errorFrom(response) {
            return response.json()
                .then(data => { throw new Error(data.error || response.statusText); },
                      () => { throw new Error(response.statusText); });
        }

        function convert() {
            pixelSizeValue.textContent = pixelSize.value;
            if (imageInput.files.length === 0) {
                return;
            }
            statusElement.textContent = 'Creating pixel art...';
            fetch('/api/convert', { method: 'POST', body: buildForm() })
                .then(response => response.ok ? response.json() : errorFrom(response))
                .then(data => {
                    document.getElementById('originalImage').src = data.original;
                    document.getElementById('styledImage').src = data.styled;
                    document.getElementById('styledHeading').textContent = data.heading;
                    downloadButton.textContent = data.downloadLabel;
                    fileName = data.fileName;

                    const lines = document.getElementById('infoLines');
                    lines.innerHTML = '';
                    data.infoLines.forEach(line => {
                        const p = document.createElement('p');
                        p.textContent = line;
                        lines.appendChild(p);
                    });

                    document.getElementById('comparison').hidden = false;
                    document.getElementById('info').hidden = false;
                    downloadButton.hidden = false;
                    statusElement.textContent = '';
                })
                .catch(error => {
                    console.error('Error converting image:', error);
                    document.getElementById('comparison').hidden = true;
                    document.getElementById('info').hidden = true;
                    downloadButton.hidden = true;
                    statusElement.textContent = 'Error: ' + error.message;
                });
        }

        downloadButton.addEventListener('click', () => {
            fetch('/api/download', { method: 'POST', body: buildForm() })
                .then(response => response.ok ? response.blob() : errorFrom(response))
                .then(blob => {
                    const link = document.createElement('a');
                    link.href = URL.createObjectURL(blob);
                    link.download = fileName;
                    link.click();
                    URL.revokeObjectURL(link.href);
                })
                .catch(error => {
                    statusElement.textContent = 'Download failed: ' + error.message;
                });
        });

        fetch('/api/styles')
            .then(response => response.json())
            .then(data => {
                data.styles.forEach(style => {
                    const option = document.createElement('option');
                    option.value = style.id;
                    option.textContent = style.label;
                    styleSelect.appendChild(option);
                });
                pixelSize.min = data.pixelSize.min;
                pixelSize.max = data.pixelSize.max;
                pixelSize.step = 1;
                pixelSize.value = data.pixelSize.default;
                pixelSizeValue.textContent = pixelSize.value;
                imageInput.accept = data.formats.map(f => '.' + f).join(',');
            });

        imageInput.addEventListener('change', convert);
        styleSelect.addEventListener('change', convert);
        pixelSize.addEventListener('change', convert);
        pixelSize.addEventListener('input', () => { pixelSizeValue.textContent = pixelSize.value; });
    </script>
</body>
</html>
`
